package gitcatalog

import (
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	argov1alpha1 "github.com/vexxhost/hyper-platform/apis/argoproj/v1alpha1"
	kustomizev1beta1 "github.com/vexxhost/hyper-platform/apis/kustomize/v1beta1"
	"github.com/vexxhost/hyper-platform/pkg/catalog"
	"github.com/vexxhost/hyper-platform/pkg/github"
	"sigs.k8s.io/yaml"
)

const (
	// KustomizationFileName is read next to each config file
	KustomizationFileName = "kustomization.yaml"

	// ApplicationSetFileName is read from each workload directory
	ApplicationSetFileName = "applicationset.yaml"
)

// Scanner reads a catalog repository at its HEAD commit
type Scanner struct {
	repo   *git.Repository
	commit *object.Commit
	tree   *object.Tree

	kustomizations map[string]*kustomizev1beta1.SourceCatalogKustomization
}

// Open opens the git checkout at path
func Open(path string) (*Scanner, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", path, err)
	}

	return New(repo)
}

// New creates a scanner over the HEAD commit of repo
func New(repo *git.Repository) (*Scanner, error) {
	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", ref.Hash(), err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree of %s: %w", commit.Hash, err)
	}

	log.Debug("Opened catalog", "commit", commit.Hash.String())

	return &Scanner{
		repo:           repo,
		commit:         commit,
		tree:           tree,
		kustomizations: make(map[string]*kustomizev1beta1.SourceCatalogKustomization),
	}, nil
}

// Commit returns the hash of the scanned commit
func (s *Scanner) Commit() string {
	return s.commit.Hash.String()
}

// Tree lists the whole HEAD tree the way the GitHub trees API does
func (s *Scanner) Tree() (*github.Tree, error) {
	walker := object.NewTreeWalker(s.tree, true, nil)
	defer walker.Close()

	result := &github.Tree{SHA: s.tree.Hash.String()}
	for {
		name, entry, err := walker.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to walk tree: %w", err)
		}

		item := github.TreeItem{
			Path: name,
			Mode: treeMode(entry.Mode),
			Type: treeType(entry.Mode),
			SHA:  entry.Hash.String(),
		}

		if item.Type == "blob" {
			blob, err := s.repo.BlobObject(entry.Hash)
			if err != nil {
				return nil, fmt.Errorf("failed to read blob %s: %w", name, err)
			}
			size := blob.Size
			item.Size = &size
		}

		result.Tree = append(result.Tree, item)
	}

	return result, nil
}

// ConfigFiles returns the ApplicationSet config file paths of the tree
func (s *Scanner) ConfigFiles() ([]catalog.ConfigPath, error) {
	tree, err := s.Tree()
	if err != nil {
		return nil, err
	}

	var paths []catalog.ConfigPath
	for _, item := range tree.Blobs() {
		p, err := catalog.ParseConfigPath(item.Path)
		if err != nil {
			continue
		}

		if p.Filename == KustomizationFileName || !catalog.IsConfigFile(p.Filename) {
			continue
		}

		paths = append(paths, p)
	}

	return paths, nil
}

// Results classifies every config file of the tree. Files that fail to
// decode are logged and reported with a nil record.
func (s *Scanner) Results() ([]catalog.ApplicationSetConfigResult, error) {
	paths, err := s.ConfigFiles()
	if err != nil {
		return nil, err
	}

	results := make([]catalog.ApplicationSetConfigResult, 0, len(paths))
	for _, p := range paths {
		data, err := s.read(p.Path)
		if err != nil {
			return nil, err
		}

		result, err := catalog.Classify(p.Path, data)
		if err != nil {
			log.Warn("Failed to classify config file", "path", p.Path, "error", err)
		}

		result.Kustomization, err = s.kustomization(p.Dir())
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

// Summaries groups the classified config files per workload, along with the
// ApplicationSet of the workload directory when there is one
func (s *Scanner) Summaries() ([]catalog.ApplicationSetSummary, error) {
	results, err := s.Results()
	if err != nil {
		return nil, err
	}

	byWorkload := make(map[string]*catalog.ApplicationSetSummary)
	for _, result := range results {
		p, err := catalog.ParseConfigPath(result.Name)
		if err != nil {
			return nil, err
		}

		dir := path.Join(p.Catalog, p.Workload)
		summary, ok := byWorkload[dir]
		if !ok {
			summary = &catalog.ApplicationSetSummary{Name: p.Workload}

			summary.ApplicationSet, err = s.applicationSet(dir)
			if err != nil {
				return nil, err
			}

			byWorkload[dir] = summary
		}

		summary.GeneratorConfigs.Items = append(summary.GeneratorConfigs.Items, result)
	}

	dirs := make([]string, 0, len(byWorkload))
	for dir := range byWorkload {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	summaries := make([]catalog.ApplicationSetSummary, 0, len(dirs))
	for _, dir := range dirs {
		summaries = append(summaries, *byWorkload[dir])
	}

	return summaries, nil
}

func (s *Scanner) read(name string) ([]byte, error) {
	file, err := s.tree.File(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", name, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return []byte(contents), nil
}

func (s *Scanner) kustomization(dir string) (*kustomizev1beta1.SourceCatalogKustomization, error) {
	if k, ok := s.kustomizations[dir]; ok {
		return k, nil
	}

	name := path.Join(dir, KustomizationFileName)
	file, err := s.tree.File(name)
	if errors.Is(err, object.ErrFileNotFound) {
		s.kustomizations[dir] = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", name, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	parsed, err := kustomizev1beta1.ParseCatalogKustomization([]byte(contents))
	if err != nil {
		log.Warn("Ignoring invalid kustomization", "path", name, "error", err)
		s.kustomizations[dir] = nil
		return nil, nil
	}

	k := &kustomizev1beta1.SourceCatalogKustomization{
		CatalogKustomization: *parsed,
		SHA:                  file.Hash.String(),
	}
	s.kustomizations[dir] = k

	return k, nil
}

func (s *Scanner) applicationSet(dir string) (*argov1alpha1.ApplicationSet, error) {
	name := path.Join(dir, ApplicationSetFileName)
	file, err := s.tree.File(name)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", name, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var appSet argov1alpha1.ApplicationSet
	if err := yaml.Unmarshal([]byte(contents), &appSet); err != nil {
		log.Warn("Ignoring invalid ApplicationSet", "path", name, "error", err)
		return nil, nil
	}

	return &appSet, nil
}

// treeMode formats a file mode as the six digit octal string used by GitHub
func treeMode(mode filemode.FileMode) string {
	return strings.TrimPrefix(mode.String(), "0")
}

func treeType(mode filemode.FileMode) string {
	switch mode {
	case filemode.Dir:
		return "tree"
	case filemode.Submodule:
		return "commit"
	default:
		return "blob"
	}
}
