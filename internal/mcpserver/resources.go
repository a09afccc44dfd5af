package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const resourceScheme = "focusdesk://documents/"

func (s *Server) registerResources(srv *server.MCPServer) {
	for _, name := range s.cmds.Documents.Names() {
		name := name
		resource := mcp.NewResource(
			resourceScheme+name,
			name+".json",
			mcp.WithResourceDescription(fmt.Sprintf("Raw %s document as stored on disk.", name)),
			mcp.WithMIMEType("application/json"),
		)
		srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			content, err := s.cmds.Documents.Read(ctx, name)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      request.Params.URI,
					MIMEType: "application/json",
					Text:     content,
				},
			}, nil
		})
	}

	status := mcp.NewResource(
		"focusdesk://status",
		"Document status",
		mcp.WithResourceDescription("Data directory and presence of every document."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(status, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := s.statusPayload(ctx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: request.Params.URI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})
}

type documentStatus struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Size     int64  `json:"size"`
	Modified string `json:"modified,omitempty"`
}

type statusPayload struct {
	DataDir   string           `json:"dataDir"`
	Documents []documentStatus `json:"documents"`
}

func (s *Server) statusPayload(ctx context.Context) (statusPayload, error) {
	dir, err := s.cmds.GetAppDataDir(ctx)
	if err != nil {
		return statusPayload{}, err
	}
	docs, err := s.cmds.Documents.Status(ctx)
	if err != nil {
		return statusPayload{}, err
	}
	out := statusPayload{DataDir: dir, Documents: make([]documentStatus, 0, len(docs))}
	for _, doc := range docs {
		entry := documentStatus{Name: doc.Name, Path: doc.Path, Exists: doc.Exists, Size: doc.Size}
		if doc.Exists {
			entry.Modified = doc.ModifiedAt.Format("2006-01-02T15:04:05Z07:00")
		}
		out.Documents = append(out.Documents, entry)
	}
	return out, nil
}
