package ports

import "go.trai.ch/rodata/internal/core/domain"

// ToolResolver maps a tool identifier such as "contrib/tools/yasm" to an executable path,
// consulting the workspace tool map first.
//
//go:generate mockgen -source=tool_resolver.go -destination=mocks/mock_tool_resolver.go -package=mocks
type ToolResolver interface {
	Resolve(ws *domain.Workspace, tool string) (string, error)
}
