package platform

// InboundGitHubEventType is a GitHub webhook event received by the platform
type InboundGitHubEventType string

const (
	InboundEventRepoPush        InboundGitHubEventType = "push"
	InboundEventRepository      InboundGitHubEventType = "repository"
	InboundEventTestComplete    InboundGitHubEventType = "test_complete"
	InboundEventRegistryPackage InboundGitHubEventType = "registry_package"
)

// InternalEventType is an event published inside the platform
type InternalEventType string

const (
	InternalEventRepoPushed         InternalEventType = "repo-pushed"
	InternalEventRepository         InternalEventType = "repository"
	InternalEventTestCompleted      InternalEventType = "test-completed"
	InternalEventPackagePublished   InternalEventType = "package-published"
	InternalEventEnvironmentUpdated InternalEventType = "environment-updated"
	InternalEventPullRequestOpened  InternalEventType = "pr-opened"
	InternalEventPullRequestClosed  InternalEventType = "pr-closed"
)

var inboundToInternal = map[InboundGitHubEventType]InternalEventType{
	InboundEventRepoPush:        InternalEventRepoPushed,
	InboundEventRepository:      InternalEventRepository,
	InboundEventTestComplete:    InternalEventTestCompleted,
	InboundEventRegistryPackage: InternalEventPackagePublished,
}

// InternalEventFor returns the internal event published for an inbound GitHub event
func InternalEventFor(inbound InboundGitHubEventType) (InternalEventType, bool) {
	internal, ok := inboundToInternal[inbound]
	return internal, ok
}
