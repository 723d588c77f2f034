// Package event projects the GitHub Actions runtime context onto the fields
// the notifier needs.
package event

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CosmoTheDev/discord-pr-notify/models"
	gogithub "github.com/google/go-github/v68/github"
	"github.com/sethvargo/go-githubactions"
)

// Event names that carry a pull_request object in their payload.
const (
	NamePullRequest       = "pull_request"
	NamePullRequestTarget = "pull_request_target"
)

// Context is a read-only view of the triggering event. Pointer fields are nil
// when the payload does not carry them.
type Context struct {
	Action    models.PRAction
	EventName string

	PullRequestNumber *int
	PullRequestAuthor *string
	MergedBy          *string
	Merged            bool

	// Actor triggered the workflow run; not necessarily the PR author.
	Actor           string
	RepositoryOwner string
	RepositoryName  string
	SHA             string
}

// Runtime carries the values the runner exports as GITHUB_* variables.
type Runtime struct {
	EventName  string
	Actor      string
	Repository string // owner/name
	SHA        string
}

// RuntimeFrom extracts the runtime values from an Actions context.
func RuntimeFrom(gh *githubactions.GitHubContext) Runtime {
	return Runtime{
		EventName:  gh.EventName,
		Actor:      gh.Actor,
		Repository: gh.Repository,
		SHA:        gh.SHA,
	}
}

// FromActions builds a Context from the runner environment and the event
// payload at GITHUB_EVENT_PATH.
func FromActions(a *githubactions.Action) (*Context, error) {
	gh, err := a.Context()
	if err != nil {
		return nil, fmt.Errorf("reading actions context: %w", err)
	}
	payload, err := json.Marshal(gh.Event)
	if err != nil {
		return nil, fmt.Errorf("re-encoding event payload: %w", err)
	}
	return FromPayload(RuntimeFrom(gh), payload)
}

// FromPayload builds a Context from raw event JSON. A nil, empty or null
// payload yields a Context with every pull request field absent. When rt has
// no repository, the owner and name come from the payload's repository.
func FromPayload(rt Runtime, payload []byte) (*Context, error) {
	var ev gogithub.PullRequestEvent
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", rt.EventName, err)
		}
	}

	owner, name, _ := strings.Cut(rt.Repository, "/")
	if rt.Repository == "" {
		owner = ev.GetRepo().GetOwner().GetLogin()
		name = ev.GetRepo().GetName()
	}
	c := &Context{
		Action:          models.PRAction(ev.GetAction()),
		EventName:       rt.EventName,
		Actor:           rt.Actor,
		RepositoryOwner: owner,
		RepositoryName:  name,
		SHA:             rt.SHA,
	}

	pr := ev.GetPullRequest()
	if pr == nil {
		return c, nil
	}
	c.PullRequestNumber = pr.Number
	c.Merged = pr.GetMerged()
	if pr.User != nil {
		c.PullRequestAuthor = pr.User.Login
	}
	if pr.MergedBy != nil {
		c.MergedBy = pr.MergedBy.Login
	}
	return c, nil
}

// IsPullRequestEvent reports whether the run was triggered by a pull request
// event family.
func (c *Context) IsPullRequestEvent() bool {
	return c.EventName == NamePullRequest || c.EventName == NamePullRequestTarget
}

// IsMerged reports whether the event closed the pull request by merging it.
func (c *Context) IsMerged() bool {
	return c.Action == models.ActionClosed && c.Merged
}
