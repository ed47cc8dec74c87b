package github

import (
	"context"
	"net/url"
	"strconv"

	"github.com/instabids/mcp-hub/internal/tool"
)

func (p *Provider) repoTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "github.list_repos",
			Description: "List repositories for the authenticated user",
			Params: []tool.Param{
				{Name: "visibility", Type: tool.TypeString, Description: "all, public or private", Default: "all"},
				{Name: "sort", Type: tool.TypeString, Description: "created, updated, pushed or full_name", Default: "updated"},
				{Name: "per_page", Type: tool.TypeInteger, Description: "Results per page", Default: 30},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := url.Values{
					"visibility": {args.StringOr("visibility", "all")},
					"sort":       {args.StringOr("sort", "updated")},
					"per_page":   {strconv.Itoa(args.IntOr("per_page", 30))},
				}
				return p.api.Get(ctx, "/user/repos", q)
			},
		},
		{
			Name:        "github.get_repo",
			Description: "Retrieve a repository",
			Params:      ownerRepoParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, ""), nil)
			},
		},
		{
			Name:        "github.create_repo",
			Description: "Create a repository for the authenticated user",
			Params: []tool.Param{
				{Name: "name", Type: tool.TypeString, Description: "Repository name", Required: true},
				{Name: "description", Type: tool.TypeString, Description: "Repository description"},
				{Name: "private", Type: tool.TypeBoolean, Description: "Create as private", Default: true},
				{Name: "auto_init", Type: tool.TypeBoolean, Description: "Initialize with an empty README", Default: true},
			},
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"name":      args.String("name"),
					"private":   args.Bool("private"),
					"auto_init": args.Bool("auto_init"),
				}
				if d := args.String("description"); d != "" {
					body["description"] = d
				}
				return p.api.Post(ctx, "/user/repos", body)
			},
		},
		{
			Name:        "github.list_branches",
			Description: "List branches of a repository",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "per_page", Type: tool.TypeInteger, Description: "Results per page", Default: 30},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := url.Values{"per_page": {strconv.Itoa(args.IntOr("per_page", 30))}}
				return p.api.Get(ctx, repoPath(args, "/branches"), q)
			},
		},
		{
			Name:        "github.list_commits",
			Description: "List commits of a repository",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "sha", Type: tool.TypeString, Description: "Branch or commit SHA to start from"},
				tool.Param{Name: "path", Type: tool.TypeString, Description: "Only commits touching this path"},
				tool.Param{Name: "per_page", Type: tool.TypeInteger, Description: "Results per page", Default: 30},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := url.Values{"per_page": {strconv.Itoa(args.IntOr("per_page", 30))}}
				if sha := args.String("sha"); sha != "" {
					q.Set("sha", sha)
				}
				if path := args.String("path"); path != "" {
					q.Set("path", path)
				}
				return p.api.Get(ctx, repoPath(args, "/commits"), q)
			},
		},
		{
			Name:        "github.get_commit",
			Description: "Retrieve a single commit with its diff stats",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "ref", Type: tool.TypeString, Description: "Commit SHA, branch or tag", Required: true},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, "/commits/"+args.String("ref")), nil)
			},
		},
		{
			Name:        "github.list_releases",
			Description: "List releases of a repository",
			Params:      ownerRepoParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, "/releases"), nil)
			},
		},
		{
			Name:        "github.get_latest_release",
			Description: "Retrieve the latest published release of a repository",
			Params:      ownerRepoParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, "/releases/latest"), nil)
			},
		},
		{
			Name:        "github.create_release",
			Description: "Create a release from an existing tag",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "tag_name", Type: tool.TypeString, Description: "Git tag for the release", Required: true},
				tool.Param{Name: "name", Type: tool.TypeString, Description: "Release title"},
				tool.Param{Name: "body", Type: tool.TypeString, Description: "Release notes"},
				tool.Param{Name: "draft", Type: tool.TypeBoolean, Description: "Create as draft", Default: false},
				tool.Param{Name: "prerelease", Type: tool.TypeBoolean, Description: "Mark as prerelease", Default: false},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"tag_name":   args.String("tag_name"),
					"draft":      args.Bool("draft"),
					"prerelease": args.Bool("prerelease"),
				}
				if n := args.String("name"); n != "" {
					body["name"] = n
				}
				if b := args.String("body"); b != "" {
					body["body"] = b
				}
				return p.api.Post(ctx, repoPath(args, "/releases"), body)
			},
		},
		{
			Name:        "github.get_repo_topics",
			Description: "List the topics of a repository",
			Params:      ownerRepoParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, repoPath(args, "/topics"), nil)
			},
		},
		{
			Name:        "github.replace_repo_topics",
			Description: "Replace all topics of a repository",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "names", Type: tool.TypeArray, Description: "Topic names", Required: true},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Put(ctx, repoPath(args, "/topics"), map[string]any{"names": args.Slice("names")})
			},
		},
		{
			Name:        "github.star_repo",
			Description: "Star a repository for the authenticated user",
			Params:      ownerRepoParams(),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Put(ctx, "/user/starred/"+args.String("owner")+"/"+args.String("repo"), nil)
			},
		},
		{
			Name:        "github.get_user",
			Description: "Retrieve the authenticated user",
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				return p.api.Get(ctx, "/user", nil)
			},
		},
	}
}
