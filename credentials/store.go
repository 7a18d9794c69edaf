package credentials

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/lukehollenback/toribank/constants"
)

const (
	Name = "≪credentials≫"

	DefaultPath = "config"

	section     = "default"
	usernameKey = "username"
	passwordKey = "password"
)

var (
	ErrNotConfigured = errors.New("credentials have not been configured")
	ErrMalformed     = errors.New("credential file is malformed")

	logger = constants.NewLogger(Name)
)

//
// Record is a username along with the digest of its password. The plaintext password is never
// kept.
//
type Record struct {
	Username     string
	PasswordHash string
}

//
// Prompter is whatever can ask the operator for a username and a password.
//
type Prompter interface {
	Line(prompt string) (string, error)
	Password(prompt string) (string, error)
}

//
// Store reads and writes a credential record kept in a small INI file.
//
type Store struct {
	path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}

	return &Store{path: path}
}

func (o *Store) Path() string {
	return o.path
}

//
// Exists returns whether or not the credential file is present.
//
func (o *Store) Exists() bool {
	_, err := os.Stat(o.path)

	return err == nil
}

//
// Hash returns the hex-encoded MD5 digest of the provided password, which is the form the forum's
// login endpoint expects.
//
// NOTE ~> MD5 is unsalted and fast. This is only what the remote service demands and must not be
//  mistaken for credential protection.
//
func Hash(password string) string {
	sum := md5.Sum([]byte(password))

	return hex.EncodeToString(sum[:])
}

//
// Configure asks the operator for a username and a password and overwrites the credential file
// with the username and the password's digest.
//
func (o *Store) Configure(p Prompter) (Record, error) {
	logger.Printf("Creating config at %s.", o.path)

	username, err := p.Line(":: Username: ")
	if err != nil {
		return Record{}, fmt.Errorf("read username: %w", err)
	}

	password, err := p.Password(":: Password: ")
	if err != nil {
		return Record{}, fmt.Errorf("read password: %w", err)
	}

	record := Record{
		Username:     username,
		PasswordHash: Hash(password),
	}

	if err := o.Save(record); err != nil {
		return Record{}, err
	}

	logger.Print("Config created.")

	return record, nil
}

//
// Save overwrites the credential file with the provided record.
//
func (o *Store) Save(record Record) error {
	file := ini.Empty()

	sec, err := file.NewSection(section)
	if err != nil {
		return err
	}

	if _, err := sec.NewKey(usernameKey, record.Username); err != nil {
		return err
	}

	if _, err := sec.NewKey(passwordKey, record.PasswordHash); err != nil {
		return err
	}

	f, err := os.OpenFile(o.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open credential file: %w", err)
	}
	defer f.Close()

	if _, err := file.WriteTo(f); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	return f.Close()
}

//
// Login reads the credential file and returns the stored username and password digest.
//
func (o *Store) Login() (Record, error) {
	if !o.Exists() {
		return Record{}, fmt.Errorf("%w: %s does not exist", ErrNotConfigured, o.path)
	}

	file, err := ini.Load(o.path)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	sec, err := file.GetSection(section)
	if err != nil {
		return Record{}, fmt.Errorf("%w: missing [%s] section", ErrMalformed, section)
	}

	for _, key := range []string{usernameKey, passwordKey} {
		if !sec.HasKey(key) {
			return Record{}, fmt.Errorf("%w: missing %q", ErrMalformed, key)
		}
	}

	return Record{
		Username:     sec.Key(usernameKey).String(),
		PasswordHash: sec.Key(passwordKey).String(),
	}, nil
}

//
// CheckPass returns whether or not the provided password hashes to the stored digest.
//
func (o *Store) CheckPass(candidate string) (bool, error) {
	record, err := o.Login()
	if err != nil {
		return false, err
	}

	return Hash(candidate) == record.PasswordHash, nil
}
