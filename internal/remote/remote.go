// Package remote keeps a local clone of a shared mapping table repository.
package remote

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/surfaces/internal/config"
	"github.com/alexisbeaulieu97/surfaces/internal/logger"
)

var (
	// ErrNotRepository is returned when the destination exists but is not a clone.
	ErrNotRepository = errors.New("destination exists but is not a git repository")
	// ErrOriginMismatch is returned when the destination tracks another remote.
	ErrOriginMismatch = errors.New("destination tracks a different origin")
)

// Options describes the repository to mirror.
type Options struct {
	URL         string
	Destination string
	Branch      string
	Depth       int
	Logger      *logger.Logger
}

// Result reports what Sync did.
type Result struct {
	Cloned  bool
	Updated bool
	Head    string
}

// State is the destination as found before syncing.
type State struct {
	Exists    bool
	IsGitRepo bool
	Origin    string
	Branch    string
}

// Inspect reads the destination without changing it.
func Inspect(dest string) (State, error) {
	var state State
	if _, err := os.Stat(dest); err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("cannot access destination: %w", err)
	}
	state.Exists = true

	if _, err := os.Stat(filepath.Join(dest, ".git")); err != nil {
		return state, nil
	}
	repo, err := git.PlainOpen(dest)
	if err != nil {
		return state, nil
	}
	state.IsGitRepo = true

	if head, err := repo.Head(); err == nil {
		state.Branch = head.Name().Short()
	}
	if remote, err := repo.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 {
		state.Origin = remote.Config().URLs[0]
	}
	return state, nil
}

// Sync clones opts.URL into opts.Destination, or fast-forwards an existing clone
// of the same origin.
func Sync(ctx context.Context, opts Options) (Result, error) {
	if strings.TrimSpace(opts.URL) == "" {
		return Result{}, errors.New("repository url is required")
	}
	if strings.TrimSpace(opts.Destination) == "" {
		return Result{}, errors.New("destination is required")
	}
	if opts.Depth < 0 {
		return Result{}, fmt.Errorf("invalid depth %d: must be >= 0", opts.Depth)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	state, err := Inspect(opts.Destination)
	if err != nil {
		return Result{}, err
	}

	log := opts.Logger.With("component", "remote", "url", opts.URL, "destination", opts.Destination)

	switch {
	case !state.Exists:
		return clone(ctx, opts, log)
	case !state.IsGitRepo:
		return Result{}, fmt.Errorf("%w: %s", ErrNotRepository, opts.Destination)
	case state.Origin != "" && state.Origin != opts.URL:
		return Result{}, fmt.Errorf("%w: %s (expected %s)", ErrOriginMismatch, state.Origin, opts.URL)
	default:
		return pull(ctx, opts, log)
	}
}

// TablePath returns where a synced repository keeps its project file.
func TablePath(dest string) string {
	return filepath.Join(dest, config.DefaultFile)
}

func clone(ctx context.Context, opts Options, log *logger.Logger) (Result, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Destination), 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create destination directory: %w", err)
	}

	cloneOpts := &git.CloneOptions{URL: opts.URL}
	if opts.Depth > 0 {
		cloneOpts.Depth = opts.Depth
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		cloneOpts.SingleBranch = true
	}

	repo, err := git.PlainCloneContext(ctx, opts.Destination, false, cloneOpts)
	if err != nil {
		return Result{}, fmt.Errorf("failed to clone repository: %w", err)
	}

	head, err := headHash(repo)
	if err != nil {
		return Result{}, err
	}
	log.Info("cloned table repository", "head", head)
	return Result{Cloned: true, Head: head}, nil
}

func pull(ctx context.Context, opts Options, log *logger.Logger) (Result, error) {
	repo, err := git.PlainOpen(opts.Destination)
	if err != nil {
		return Result{}, fmt.Errorf("open repository: %w", err)
	}
	before, err := headHash(repo)
	if err != nil {
		return Result{}, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Result{}, fmt.Errorf("open worktree: %w", err)
	}

	pullOpts := &git.PullOptions{RemoteName: "origin"}
	if opts.Depth > 0 {
		pullOpts.Depth = opts.Depth
	}
	if opts.Branch != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		pullOpts.SingleBranch = true
	}

	err = wt.PullContext(ctx, pullOpts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		log.Debug("table repository already up to date", "head", before)
		return Result{Head: before}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to pull repository: %w", err)
	}

	after, err := headHash(repo)
	if err != nil {
		return Result{}, err
	}
	log.Info("updated table repository", "from", before, "to", after)
	return Result{Updated: after != before, Head: after}, nil
}

func headHash(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}
