package mcpserver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *Server) registerTools(srv *server.MCPServer) {
	docNames := s.cmds.Documents.Names()

	srv.AddTool(mcp.NewTool("read_document",
		mcp.WithDescription("Read a document. A document that was never written returns its default."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Document name."), mcp.Enum(docNames...)),
	), s.handleReadDocument)

	srv.AddTool(mcp.NewTool("write_document",
		mcp.WithDescription("Replace a document with the given JSON text."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Document name."), mcp.Enum(docNames...)),
		mcp.WithString("content", mcp.Required(), mcp.Description("Complete JSON document.")),
	), s.handleWriteDocument)

	srv.AddTool(mcp.NewTool("document_status",
		mcp.WithDescription("Show the data directory and which documents exist."),
	), s.handleStatus)

	srv.AddTool(mcp.NewTool("create_backup",
		mcp.WithDescription("Snapshot every existing document into a timestamped backup folder."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Backup base name, without path separators.")),
	), s.handleCreateBackup)

	srv.AddTool(mcp.NewTool("list_backups",
		mcp.WithDescription("List recorded backups, newest first."),
	), s.handleListBackups)

	srv.AddTool(mcp.NewTool("export_data",
		mcp.WithDescription("Copy a stored document to a file."),
		mcp.WithString("type", mcp.Required(), mcp.Enum(docNames...)),
		mcp.WithString("path", mcp.Required(), mcp.Description("Destination file path.")),
	), s.handleExport)

	srv.AddTool(mcp.NewTool("import_data",
		mcp.WithDescription("Replace a document with the contents of a JSON file."),
		mcp.WithString("type", mcp.Required(), mcp.Enum(docNames...)),
		mcp.WithString("path", mcp.Required(), mcp.Description("Source file path.")),
	), s.handleImport)
}

func (s *Server) handleReadDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(req, "name")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	content, err := s.cmds.Documents.Read(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) handleWriteDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(req, "name")
	content := stringArg(req, "content")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	if !json.Valid([]byte(content)) {
		return mcp.NewToolResultError("content is not valid JSON"), nil
	}
	if err := s.cmds.Documents.Write(ctx, name, content); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.log.Info("document written over mcp", "name", name, "bytes", len(content))
	return textResult("wrote %s (%d bytes)", strings.ToLower(name), len(content)), nil
}

func (s *Server) handleStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.statusPayload(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(payload)
}

func (s *Server) handleCreateBackup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.cmds.Backups.Create(ctx, stringArg(req, "name"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult("backup created at %s (%s)", out.Folder, strings.Join(out.Documents, ", ")), nil
}

type backupEntry struct {
	Name      string   `json:"name"`
	Stamp     string   `json:"stamp"`
	Folder    string   `json:"folder"`
	Documents []string `json:"documents"`
}

func (s *Server) handleListBackups(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	backups, err := s.cmds.Backups.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out := make([]backupEntry, 0, len(backups))
	for _, backup := range backups {
		out = append(out, backupEntry{Name: backup.Name, Stamp: backup.Stamp, Folder: backup.Folder, Documents: backup.Documents})
	}
	return jsonResult(map[string]any{"backups": out, "count": len(out)})
}

func (s *Server) handleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataType, path := stringArg(req, "type"), stringArg(req, "path")
	if err := s.cmds.ExportData(ctx, dataType, path); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult("exported %s to %s", dataType, path), nil
}

func (s *Server) handleImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataType, path := stringArg(req, "type"), stringArg(req, "path")
	if err := s.cmds.ImportData(ctx, dataType, path); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult("imported %s from %s", dataType, path), nil
}
