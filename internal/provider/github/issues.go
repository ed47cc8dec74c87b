package github

import (
	"context"
	"net/url"
	"strconv"

	"github.com/instabids/mcp-hub/internal/tool"
)

func issueNumberParam() tool.Param {
	return tool.Param{Name: "issue_number", Type: tool.TypeInteger, Description: "Issue number", Required: true}
}

func (p *Provider) issueTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "github.list_issues",
			Description: "List issues of a repository",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "state", Type: tool.TypeString, Description: "open, closed or all", Default: "open"},
				tool.Param{Name: "labels", Type: tool.TypeString, Description: "Comma-separated label names"},
				tool.Param{Name: "per_page", Type: tool.TypeInteger, Description: "Results per page", Default: 30},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := url.Values{
					"state":    {args.StringOr("state", "open")},
					"per_page": {strconv.Itoa(args.IntOr("per_page", 30))},
				}
				if l := args.String("labels"); l != "" {
					q.Set("labels", l)
				}
				return p.api.Get(ctx, repoPath(args, "/issues"), q)
			},
		},
		{
			Name:        "github.get_issue",
			Description: "Retrieve a single issue",
			Params:      append(ownerRepoParams(), issueNumberParam()),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, "/issues/"+strconv.Itoa(args.Int("issue_number"))), nil)
			},
		},
		{
			Name:        "github.create_issue",
			Description: "Open a new issue",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "title", Type: tool.TypeString, Description: "Issue title", Required: true},
				tool.Param{Name: "body", Type: tool.TypeString, Description: "Issue body"},
				tool.Param{Name: "labels", Type: tool.TypeArray, Description: "Label names"},
				tool.Param{Name: "assignees", Type: tool.TypeArray, Description: "User logins to assign"},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{"title": args.String("title")}
				if b := args.String("body"); b != "" {
					body["body"] = b
				}
				if l := args.Slice("labels"); len(l) > 0 {
					body["labels"] = l
				}
				if a := args.Slice("assignees"); len(a) > 0 {
					body["assignees"] = a
				}
				return p.api.Post(ctx, repoPath(args, "/issues"), body)
			},
		},
		{
			Name:        "github.update_issue",
			Description: "Edit an issue's title, body or state",
			Params: append(ownerRepoParams(), issueNumberParam(),
				tool.Param{Name: "title", Type: tool.TypeString, Description: "New title"},
				tool.Param{Name: "body", Type: tool.TypeString, Description: "New body"},
				tool.Param{Name: "state", Type: tool.TypeString, Description: "open or closed"},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{}
				if t := args.String("title"); t != "" {
					body["title"] = t
				}
				if b := args.String("body"); b != "" {
					body["body"] = b
				}
				if s := args.String("state"); s != "" {
					body["state"] = s
				}
				if len(body) == 0 {
					return nil, tool.Validationf("nothing to update: provide title, body or state")
				}
				return p.api.Patch(ctx, repoPath(args, "/issues/"+strconv.Itoa(args.Int("issue_number"))), body)
			},
		},
		{
			Name:        "github.comment_on_issue",
			Description: "Add a comment to an issue or pull request",
			Params: append(ownerRepoParams(), issueNumberParam(),
				tool.Param{Name: "body", Type: tool.TypeString, Description: "Comment body", Required: true},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				path := repoPath(args, "/issues/"+strconv.Itoa(args.Int("issue_number"))+"/comments")
				return p.api.Post(ctx, path, map[string]any{"body": args.String("body")})
			},
		},
	}
}
