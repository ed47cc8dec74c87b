package github

import (
	"context"
	"fmt"

	"github.com/instabids/mcp-hub/internal/tool"
)

// refSHA extracts object.sha from a git ref response.
func refSHA(res any) (string, error) {
	obj, ok := res.(map[string]any)
	if !ok {
		return "", fmt.Errorf("unexpected ref payload %T", res)
	}
	inner, ok := obj["object"].(map[string]any)
	if !ok {
		return "", fmt.Errorf("ref payload missing object")
	}
	sha, ok := inner["sha"].(string)
	if !ok {
		return "", fmt.Errorf("ref payload missing object.sha")
	}
	return sha, nil
}

// topField extracts a string field from a map payload.
func topField(res any, key string) (string, error) {
	obj, ok := res.(map[string]any)
	if !ok {
		return "", fmt.Errorf("unexpected payload %T", res)
	}
	v, ok := obj[key].(string)
	if !ok {
		return "", fmt.Errorf("payload missing %q", key)
	}
	return v, nil
}

// pushFiles commits several files to a branch atomically via the Git Data
// API: read the branch head, build one tree with every file, create a
// single commit on top and fast-forward the ref to it.
func (p *Provider) pushFiles(ctx context.Context, args tool.Args) (any, error) {
	branch := args.String("branch")
	files := args.ObjectSlice("files")
	if len(files) == 0 {
		return nil, tool.Validationf("files must contain at least one {path, content} entry")
	}

	refRes, err := p.api.Get(ctx, repoPath(args, "/git/ref/heads/"+branch), nil)
	if err != nil {
		return nil, err
	}
	headSHA, err := refSHA(refRes)
	if err != nil {
		return nil, err
	}

	commitRes, err := p.api.Get(ctx, repoPath(args, "/git/commits/"+headSHA), nil)
	if err != nil {
		return nil, err
	}
	baseTree, err := func() (string, error) {
		obj, ok := commitRes.(map[string]any)
		if !ok {
			return "", fmt.Errorf("unexpected commit payload %T", commitRes)
		}
		tree, ok := obj["tree"].(map[string]any)
		if !ok {
			return "", fmt.Errorf("commit payload missing tree")
		}
		sha, _ := tree["sha"].(string)
		return sha, nil
	}()
	if err != nil {
		return nil, err
	}

	entries := make([]map[string]any, 0, len(files))
	for i, f := range files {
		path, _ := f["path"].(string)
		content, _ := f["content"].(string)
		if path == "" {
			return nil, tool.Validationf("files[%d] is missing path", i)
		}
		blobRes, err := p.api.Post(ctx, repoPath(args, "/git/blobs"), map[string]any{
			"content":  content,
			"encoding": "utf-8",
		})
		if err != nil {
			return nil, err
		}
		blobSHA, err := topField(blobRes, "sha")
		if err != nil {
			return nil, err
		}
		entries = append(entries, map[string]any{
			"path": path,
			"mode": "100644",
			"type": "blob",
			"sha":  blobSHA,
		})
	}

	treeRes, err := p.api.Post(ctx, repoPath(args, "/git/trees"), map[string]any{
		"base_tree": baseTree,
		"tree":      entries,
	})
	if err != nil {
		return nil, err
	}
	treeSHA, err := topField(treeRes, "sha")
	if err != nil {
		return nil, err
	}

	newCommitRes, err := p.api.Post(ctx, repoPath(args, "/git/commits"), map[string]any{
		"message": args.String("message"),
		"tree":    treeSHA,
		"parents": []string{headSHA},
	})
	if err != nil {
		return nil, err
	}
	newCommitSHA, err := topField(newCommitRes, "sha")
	if err != nil {
		return nil, err
	}

	return p.api.Patch(ctx, repoPath(args, "/git/refs/heads/"+branch), map[string]any{
		"sha":   newCommitSHA,
		"force": false,
	})
}

func (p *Provider) gitDataTools() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "github.create_branch",
			Description: "Create a branch from an existing ref",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "branch", Type: tool.TypeString, Description: "New branch name", Required: true},
				tool.Param{Name: "from_ref", Type: tool.TypeString, Description: "Source branch or SHA", Required: true},
			),
			Handler: func(ctx context.Context, args tool.Args) (any, error) {
				refRes, err := p.api.Get(ctx, repoPath(args, "/git/ref/heads/"+args.String("from_ref")), nil)
				if err != nil {
					return nil, err
				}
				sha, err := refSHA(refRes)
				if err != nil {
					return nil, err
				}
				return p.api.Post(ctx, repoPath(args, "/git/refs"), map[string]any{
					"ref": "refs/heads/" + args.String("branch"),
					"sha": sha,
				})
			},
		},
		{
			Name:        "github.push_files",
			Description: "Commit multiple files to a branch in a single commit",
			Params: append(ownerRepoParams(),
				tool.Param{Name: "branch", Type: tool.TypeString, Description: "Target branch", Required: true},
				tool.Param{Name: "message", Type: tool.TypeString, Description: "Commit message", Required: true},
				tool.Param{Name: "files", Type: tool.TypeArray, Description: "Entries with path and content fields", Required: true},
			),
			Handler: p.pushFiles,
		},
	}
}
