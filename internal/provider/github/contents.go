package github

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/instabids/mcp-hub/internal/tool"
)

// fileSHA looks up the current blob SHA of a file, or "" when it does not
// exist yet. Lets create_or_update_file work without the caller fetching
// the SHA first.
func (p *Provider) fileSHA(ctx context.Context, args tool.Args, ref string) string {
	q := url.Values{}
	if ref != "" {
		q.Set("ref", ref)
	}
	res, err := p.api.Get(ctx, repoPath(args, "/contents/"+args.String("path")), q)
	if err != nil {
		return ""
	}
	obj, ok := res.(map[string]any)
	if !ok {
		return ""
	}
	sha, _ := obj["sha"].(string)
	return sha
}

// decodeContent replaces the base64 "content" field of a contents response
// with the decoded text. Directory listings pass through untouched.
func decodeContent(res any) any {
	obj, ok := res.(map[string]any)
	if !ok {
		return res
	}
	encoded, ok := obj["content"].(string)
	if !ok {
		return res
	}
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\n", ""))
	if err != nil {
		return res
	}
	obj["content"] = string(raw)
	obj["encoding"] = "utf-8"
	return obj
}

func (p *Provider) contentTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "github.get_file_contents",
			Description: "Read a file or list a directory; file content is returned decoded",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "path", Type: tool.TypeString, Description: "Path within the repository", Required: true},
				tool.Param{Name: "ref", Type: tool.TypeString, Description: "Branch, tag or commit SHA"},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				q := url.Values{}
				if ref := args.String("ref"); ref != "" {
					q.Set("ref", ref)
				}
				res, err := p.api.Get(ctx, repoPath(args, "/contents/"+args.String("path")), q)
				if err != nil {
					return nil, err
				}
				return decodeContent(res), nil
			},
		},
		{
			Name:        "github.create_or_update_file",
			Description: "Create a file or overwrite an existing one in a single commit",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "path", Type: tool.TypeString, Description: "Path within the repository", Required: true},
				tool.Param{Name: "content", Type: tool.TypeString, Description: "New file content (plain text)", Required: true},
				tool.Param{Name: "message", Type: tool.TypeString, Description: "Commit message", Required: true},
				tool.Param{Name: "branch", Type: tool.TypeString, Description: "Target branch, defaults to the repository default"},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				body := map[string]any{
					"message": args.String("message"),
					"content": base64.StdEncoding.EncodeToString([]byte(args.String("content"))),
				}
				branch := args.String("branch")
				if branch != "" {
					body["branch"] = branch
				}
				if sha := p.fileSHA(ctx, args, branch); sha != "" {
					body["sha"] = sha
				}
				return p.api.Put(ctx, repoPath(args, "/contents/"+args.String("path")), body)
			},
		},
		{
			Name:        "github.delete_file",
			Description: "Delete a file in a single commit",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "path", Type: tool.TypeString, Description: "Path within the repository", Required: true},
				tool.Param{Name: "message", Type: tool.TypeString, Description: "Commit message", Required: true},
				tool.Param{Name: "branch", Type: tool.TypeString, Description: "Target branch, defaults to the repository default"},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				branch := args.String("branch")
				sha := p.fileSHA(ctx, args, branch)
				if sha == "" {
					return nil, tool.Validationf("file %q not found, nothing to delete", args.String("path"))
				}
				body := map[string]any{
					"message": args.String("message"),
					"sha":     sha,
				}
				if branch != "" {
					body["branch"] = branch
				}
				return p.api.Do(ctx, "DELETE", repoPath(args, "/contents/"+args.String("path")), nil, body)
			},
		},
	}
}
