package github

import (
	"context"
	"net/url"
	"strconv"

	"github.com/instabids/mcp-hub/internal/tool"
)

// searchTool builds one descriptor per search index; they differ only by path.
func (p *Provider) searchTool(name, index, desc string) tool.Descriptor {
	return tool.Descriptor{
		Name:        name,
		Description: desc,
		Params: []tool.Param{
			{Name: "query", Type: tool.TypeString, Description: "Search query in GitHub search syntax", Required: true},
			{Name: "per_page", Type: tool.TypeInteger, Description: "Results per page", Default: 30},
		},
		Handler: func(ctx context.Context, args tool.Args) (any, error) {
			q := url.Values{
				"q":        {args.String("query")},
				"per_page": {strconv.Itoa(args.IntOr("per_page", 30))},
			}
			return p.api.Get(ctx, "/search/"+index, q)
		},
	}
}

func (p *Provider) searchTools() []tool.Descriptor {
	return []tool.Descriptor{
		p.searchTool("github.search_repositories", "repositories", "Search repositories"),
		p.searchTool("github.search_code", "code", "Search code"),
		p.searchTool("github.search_issues", "issues", "Search issues and pull requests"),
	}
}
