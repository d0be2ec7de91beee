package sshkeys

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKeyList(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{
			name:    "valid list",
			content: "keys:\n  - ssh-ed25519 AAAA... ops@example\n  - ssh-rsa BBBB... backup@example\n",
			want:    2,
		},
		{
			name:    "empty list",
			content: "keys: []\n",
			wantErr: true,
		},
		{
			name:    "no keys section",
			content: "other: value\n",
			wantErr: true,
		},
		{
			name:    "malformed key entry",
			content: "keys:\n  - not a key at all\n",
			wantErr: true,
		},
		{
			name:    "comment entry rejected",
			content: "keys:\n  - '# ssh-rsa AAAA disabled'\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: "keys: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "keys.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			keys, err := LoadKeyList(context.Background(), path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadKeyList() expected error, got keys %v", keys)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadKeyList() error: %v", err)
			}
			if len(keys) != tt.want {
				t.Errorf("LoadKeyList() returned %d keys, want %d", len(keys), tt.want)
			}
		})
	}
}

func TestLoadKeyListMissingFile(t *testing.T) {
	_, err := LoadKeyList(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("LoadKeyList() on a missing file should fail")
	}
}
