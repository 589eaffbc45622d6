package greeter

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	git "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"

	"github.com/velvetfox/riceup/internal/errdefs"
)

const DefaultRepoURL = "https://github.com/JezerM/web-greeter.git"

// Builder clones the web-greeter sources and builds them on the target
// system. Unlike the rest of the provisioning run this step is fatal on
// failure: without a greeter the display-manager configuration that follows
// would lock the user out of the login screen.
type Builder struct {
	RepoURL string
	Ref     string
	logFunc func(string)

	// cloneCmd and buildCmd are swapped in tests; the defaults clone with
	// go-git and run make install in the checkout directory.
	cloneCmd func(ctx context.Context, dir string) error
	buildCmd func(ctx context.Context, dir string) error
}

func NewBuilder(repoURL, ref string, logFunc func(string)) *Builder {
	if repoURL == "" {
		repoURL = DefaultRepoURL
	}
	b := &Builder{RepoURL: repoURL, Ref: ref, logFunc: logFunc}
	b.cloneCmd = b.clone
	b.buildCmd = b.makeInstall
	return b
}

// Install clones into a process-unique temporary directory, builds, and
// installs. The checkout directory is removed on every exit path.
func (b *Builder) Install(ctx context.Context) error {
	dir, err := os.MkdirTemp("", "riceup-greeter-*")
	if err != nil {
		return errdefs.NewCustomError(errdefs.ErrTypeGreeterBuild,
			fmt.Sprintf("could not create build directory: %v", err))
	}
	defer os.RemoveAll(dir)

	b.log(fmt.Sprintf("Cloning %s", b.RepoURL))
	if err := b.cloneCmd(ctx, dir); err != nil {
		return errdefs.NewCustomError(errdefs.ErrTypeGreeterBuild,
			fmt.Sprintf("greeter clone failed: %v", err))
	}

	b.log("Building and installing web-greeter")
	if err := b.buildCmd(ctx, dir); err != nil {
		return errdefs.NewCustomError(errdefs.ErrTypeGreeterBuild,
			fmt.Sprintf("greeter build failed: %v", err))
	}

	b.log("✓ web-greeter installed")
	return nil
}

func (b *Builder) clone(ctx context.Context, dir string) error {
	opts := &git.CloneOptions{
		URL:               b.RepoURL,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
		Depth:             1,
	}
	if b.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(b.Ref)
		opts.SingleBranch = true
	}

	_, err := git.PlainCloneContext(ctx, dir, opts)
	return err
}

func (b *Builder) makeInstall(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "make", "install")
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("make install: %w\n%s", err, string(output))
	}
	return nil
}

func (b *Builder) log(message string) {
	if b.logFunc != nil {
		b.logFunc(message)
	}
}
