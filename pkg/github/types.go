package github

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ErrorType classifies a failed GitHub call
type ErrorType string

const (
	ErrorTypeNotFound                   ErrorType = "NOT_FOUND"
	ErrorTypeInvalidYAML                ErrorType = "INVALID_YAML"
	ErrorTypeInvalidResponse            ErrorType = "INVALID_RESPONSE"
	ErrorTypeNetworkError               ErrorType = "NETWORK_ERROR"
	ErrorTypeAggregateFailure           ErrorType = "AGGREGATE_FAILURE"
	ErrorTypeClientInitializationFailed ErrorType = "CLIENT_INITIALIZATION_FAILED"
	ErrorTypePermissionDenied           ErrorType = "PERMISSION_DENIED"
)

// UpdateType is how a change is written back to a repository
type UpdateType string

const (
	UpdateTypePush        UpdateType = "PUSH"
	UpdateTypePullRequest UpdateType = "PULL_REQUEST"
)

// AuthType is how the platform authenticates against GitHub
type AuthType string

const (
	AuthTypeInstallation AuthType = "INSTALLATION"
	AuthTypePAT          AuthType = "PAT"
)

// Content is an arbitrary decoded document along with its blob SHA
type Content map[string]any

// SHA returns the sha key of the content, if any
func (c Content) SHA() string {
	sha, _ := c["sha"].(string)
	return sha
}

// YamlFileContent is a YAML file read from a repository
type YamlFileContent struct {
	Path    string  `json:"path"`
	Content Content `json:"content"`
	Error   string  `json:"error,omitempty"`
}

// File is a file returned by the contents API
type File struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// Decode returns the file contents. The contents API wraps base64 at 60
// columns.
func (f File) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(f.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode file contents: %w", err)
	}
	return data, nil
}

// TreeItem is one entry of a git tree
type TreeItem struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size *int64 `json:"size,omitempty"`
	URL  string `json:"url"`
}

// Tree is a (possibly recursive) git tree listing
type Tree struct {
	SHA       string     `json:"sha"`
	URL       string     `json:"url"`
	Tree      []TreeItem `json:"tree"`
	Truncated bool       `json:"truncated"`
}

// Blobs returns the blob entries of the tree
func (t *Tree) Blobs() []TreeItem {
	var blobs []TreeItem
	for _, item := range t.Tree {
		if item.Type == "blob" {
			blobs = append(blobs, item)
		}
	}
	return blobs
}

// TreeResponse is the result of a tree listing
type TreeResponse[T any] struct {
	Data      T         `json:"data"`
	OK        bool      `json:"ok"`
	ErrorType ErrorType `json:"errorType,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Response is the result of a GitHub call
type Response[T any] struct {
	OK        bool      `json:"ok"`
	Data      *T        `json:"data"`
	Error     string    `json:"error,omitempty"`
	ErrorType ErrorType `json:"errorType,omitempty"`
}

// Fail builds a failed response
func Fail[T any](errorType ErrorType, err error) Response[T] {
	return Response[T]{ErrorType: errorType, Error: err.Error()}
}

// FolderEntryType is the kind of a folder entry
type FolderEntryType string

const (
	FolderEntryDir       FolderEntryType = "dir"
	FolderEntryFile      FolderEntryType = "file"
	FolderEntrySubmodule FolderEntryType = "submodule"
	FolderEntrySymlink   FolderEntryType = "symlink"
)

// FolderEntry is one entry of a folder listing
type FolderEntry struct {
	Name string          `json:"name"`
	Path string          `json:"path"`
	Type FolderEntryType `json:"type"`
}

// InstallationAuth holds the credentials of a GitHub App installation
type InstallationAuth struct {
	AppID          string `json:"appId"`
	InstallationID int64  `json:"installationId"`
	PrivateKey     string `json:"privateKey"`
}

// WorkloadUpdateResult describes the commit or pull request created by an update
type WorkloadUpdateResult struct {
	SHA               string `json:"sha,omitempty"`
	PullRequestURL    string `json:"pullRequestUrl,omitempty"`
	PullRequestNumber int    `json:"pullRequestNumber,omitempty"`
}

// WorkloadUpdateResponse is the result of writing updated workload values
type WorkloadUpdateResponse struct {
	OK    bool                  `json:"ok"`
	Data  *WorkloadUpdateResult `json:"data,omitempty"`
	Error string                `json:"error,omitempty"`
}
