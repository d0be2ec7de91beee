// pkg/hardening/defaults.go

package hardening

// DefaultAuthorizedKeys is the built-in key list inserted when no key-list
// file is configured. Entries are full authorized_keys lines; insertion order
// does not matter and duplicates within the list are not deduplicated against
// each other, only against the file.
var DefaultAuthorizedKeys = []string{
	"ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIJXzQmXooNvGp4p2m1E0TqVxRfCHJd4e0mXMAtY44G1r ops@cybermonkey.dev",
	"ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIGw9nXLTFvEY84tJbPZ9uqHt1emv8Zup5DfG7qMo0b5S backup@cybermonkey.dev",
}
