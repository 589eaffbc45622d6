package userctx

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/velvetfox/riceup/internal/errdefs"
)

// Context describes the user the desktop is being provisioned for. It is
// resolved once at startup and passed unchanged to every step; the invoking
// process is root, the target user is whoever escalated to it.
type Context struct {
	Username  string
	UID       int
	GID       int
	Home      string
	ConfigDir string
	FontDir   string
}

// RequireRoot fails when the process does not hold root privileges.
func RequireRoot() error {
	if os.Geteuid() != 0 {
		return errdefs.ErrNotRoot
	}
	return nil
}

// Resolve determines the target user from the sudo environment, falling back
// to the process owner when the tool was not invoked through sudo.
func Resolve() (*Context, error) {
	return resolve(os.Getenv)
}

func resolve(getenv func(string) string) (*Context, error) {
	var u *user.User
	var err error

	switch {
	case getenv("SUDO_UID") != "":
		u, err = user.LookupId(getenv("SUDO_UID"))
	case getenv("SUDO_USER") != "":
		u, err = user.Lookup(getenv("SUDO_USER"))
	default:
		u, err = user.Current()
	}
	if err != nil {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeNoTargetUser,
			fmt.Sprintf("could not determine target user: %v", err))
	}
	if u.Uid == "0" {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeNoTargetUser,
			"refusing to provision a desktop for the root user; run through sudo from a regular account")
	}

	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return nil, fmt.Errorf("unparseable uid %q for user %s: %w", u.Uid, u.Username, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return nil, fmt.Errorf("unparseable gid %q for user %s: %w", u.Gid, u.Username, err)
	}

	home := u.HomeDir
	if home == "" {
		home = filepath.Join("/home", u.Username)
	}

	return &Context{
		Username:  u.Username,
		UID:       uid,
		GID:       gid,
		Home:      home,
		ConfigDir: filepath.Join(home, ".config"),
		FontDir:   filepath.Join(home, ".local", "share", "fonts"),
	}, nil
}
