package imurl_test

import (
	"testing"

	"github.com/ghettovoice/imurl"
)

func TestUserInfo_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ui   imurl.UserInfo
		want string
	}{
		{"zero", imurl.UserInfo{}, ""},
		{"username only", imurl.User("alice"), "alice"},
		{"with password", imurl.UserPassword("alice", "s3cret"), "alice:s3cret"},
		{"empty password kept", imurl.UserPassword("alice", ""), "alice:"},
		{"reserved chars escaped", imurl.UserPassword("a:b", "p@ss w"), "a%3Ab:p%40ss%20w"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := c.ui.String(), c.want; got != want {
				t.Errorf("ui.String() = %q, want %q", got, want)
			}
		})
	}
}

func TestUserInfo_Password(t *testing.T) {
	t.Parallel()

	if _, ok := imurl.User("alice").Password(); ok {
		t.Error("User(alice).Password() = _, true, want false")
	}
	pw, ok := imurl.UserPassword("alice", "").Password()
	if !ok || pw != "" {
		t.Errorf(`UserPassword(alice, "").Password() = %q, %v, want "", true`, pw, ok)
	}
}

func TestUserInfo_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ui   imurl.UserInfo
		val  any
		want bool
	}{
		{"equal", imurl.UserPassword("a", "b"), imurl.UserPassword("a", "b"), true},
		{"equal by pointer", imurl.User("a"), ptr(imurl.User("a")), true},
		{"no password vs empty password", imurl.User("a"), imurl.UserPassword("a", ""), false},
		{"different username", imurl.User("a"), imurl.User("b"), false},
		{"not a UserInfo", imurl.User("a"), "a", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := c.ui.Equal(c.val), c.want; got != want {
				t.Errorf("ui.Equal(%+v) = %v, want %v", c.val, got, want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
