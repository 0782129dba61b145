// Copyright 2025 VEXXHOST, Inc.
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// APIVersion is the apiVersion of every Argo CD resource in this package
	APIVersion = "argoproj.io/v1alpha1"

	KindApplication    = "Application"
	KindApplicationSet = "ApplicationSet"
)

// ApplicationSource defines the git path an Application deploys from
type ApplicationSource struct {
	// RepoURL is the URL of the source repository
	RepoURL string `json:"repoURL"`

	// TargetRevision is the branch, tag or commit to deploy
	TargetRevision string `json:"targetRevision"`

	// Path is the directory inside the repository
	Path string `json:"path"`
}

// ApplicationDestination defines the cluster and namespace of an Application
type ApplicationDestination struct {
	Name      string `json:"name,omitempty"`
	Server    string `json:"server,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// SyncPolicyAutomated controls automated sync
type SyncPolicyAutomated struct {
	Prune      bool `json:"prune"`
	SelfHeal   bool `json:"selfHeal"`
	AllowEmpty bool `json:"allowEmpty,omitempty"`
}

// Backoff controls the delay between sync retries
type Backoff struct {
	Duration    string `json:"duration"`
	Factor      int64  `json:"factor"`
	MaxDuration string `json:"maxDuration"`
}

// RetryStrategy controls sync retries
type RetryStrategy struct {
	Limit   int64   `json:"limit"`
	Backoff Backoff `json:"backoff"`
}

// SyncPolicy controls when and how an Application is synced
type SyncPolicy struct {
	Automated   *SyncPolicyAutomated `json:"automated,omitempty"`
	SyncOptions []string             `json:"syncOptions,omitempty"`
	Retry       *RetryStrategy       `json:"retry,omitempty"`
}

// ApplicationSpec defines the desired state of an Application
type ApplicationSpec struct {
	// Project is the Argo CD project the Application belongs to
	Project string `json:"project"`

	// Source is the git location of the manifests
	Source ApplicationSource `json:"source"`

	// Destination is the target cluster and namespace
	Destination ApplicationDestination `json:"destination"`

	// SyncPolicy controls automated sync and retries
	SyncPolicy SyncPolicy `json:"syncPolicy"`
}

// Application is an Argo CD Application
type Application struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ApplicationSpec `json:"spec"`
}

// NewApplication returns an Application with its type metadata set
func NewApplication(name, namespace string) *Application {
	return &Application{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion,
			Kind:       KindApplication,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
	}
}
