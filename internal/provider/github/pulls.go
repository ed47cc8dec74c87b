package github

import (
	"context"
	"net/url"
	"strconv"

	"github.com/instabids/mcp-hub/internal/tool"
)

func pullNumberParam() tool.Param {
	return tool.Param{Name: "pull_number", Type: tool.TypeInteger, Description: "Pull request number", Required: true}
}

func (p *Provider) pullTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "github.list_pull_requests",
			Description: "List pull requests of a repository",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "state", Type: tool.TypeString, Description: "open, closed or all", Default: "open"},
				tool.Param{Name: "per_page", Type: tool.TypeInteger, Description: "Results per page", Default: 30},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := url.Values{
					"state":    {args.StringOr("state", "open")},
					"per_page": {strconv.Itoa(args.IntOr("per_page", 30))},
				}
				return p.api.Get(ctx, repoPath(args, "/pulls"), q)
			},
		},
		{
			Name:        "github.get_pull_request",
			Description: "Retrieve a single pull request",
			Params:      append(ownerRepoParams(), pullNumberParam()),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, "/pulls/"+strconv.Itoa(args.Int("pull_number"))), nil)
			},
		},
		{
			Name:        "github.create_pull_request",
			Description: "Open a pull request",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "title", Type: tool.TypeString, Description: "Pull request title", Required: true},
				tool.Param{Name: "head", Type: tool.TypeString, Description: "Branch with the changes", Required: true},
				tool.Param{Name: "base", Type: tool.TypeString, Description: "Branch to merge into", Required: true},
				tool.Param{Name: "body", Type: tool.TypeString, Description: "Pull request description"},
				tool.Param{Name: "draft", Type: tool.TypeBoolean, Description: "Open as draft", Default: false},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"title": args.String("title"),
					"head":  args.String("head"),
					"base":  args.String("base"),
					"draft": args.Bool("draft"),
				}
				if b := args.String("body"); b != "" {
					body["body"] = b
				}
				return p.api.Post(ctx, repoPath(args, "/pulls"), body)
			},
		},
		{
			Name:        "github.merge_pull_request",
			Description: "Merge a pull request",
			Params: append(ownerRepoParams(), pullNumberParam(),
				tool.Param{Name: "merge_method", Type: tool.TypeString, Description: "merge, squash or rebase", Default: "merge"},
				tool.Param{Name: "commit_title", Type: tool.TypeString, Description: "Title for the merge commit"},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{"merge_method": args.StringOr("merge_method", "merge")}
				if t := args.String("commit_title"); t != "" {
					body["commit_title"] = t
				}
				return p.api.Put(ctx, repoPath(args, "/pulls/"+strconv.Itoa(args.Int("pull_number"))+"/merge"), body)
			},
		},
		{
			Name:        "github.list_pull_request_files",
			Description: "List the files changed by a pull request",
			Params:      append(ownerRepoParams(), pullNumberParam()),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, "/pulls/"+strconv.Itoa(args.Int("pull_number"))+"/files"), nil)
			},
		},
	}
}
