package planner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports/mocks"
	"go.trai.ch/rodata/internal/engine/planner"
	"go.trai.ch/rodata/internal/engine/rodata"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	registry := rodata.NewRegistry()
	require.NoError(t, rodata.NewRules(executor, log).Register(registry))
	return planner.New(registry)
}

func workspace(t *testing.T, specs ...domain.UnitSpec) *domain.Workspace {
	t.Helper()
	root := t.TempDir()
	ws := &domain.Workspace{Root: root, BuildRoot: filepath.Join(root, "build")}
	for _, spec := range specs {
		spec.SourceDir = root
		spec.BuildDir = ws.BuildRoot
		for _, res := range spec.Resources {
			p := filepath.Join(root, filepath.FromSlash(res[len("$S/"):]))
			require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
			require.NoError(t, os.WriteFile(p, []byte("data"), domain.PrivateFilePerm))
		}
		ws.Units = append(ws.Units, domain.NewUnit(spec))
	}
	return ws
}

func TestPlanner_Plan(t *testing.T) {
	ws := workspace(t,
		domain.UnitSpec{
			Name:      "x86",
			Flags:     []string{"LINUX", "ARCH_X86_64"},
			Options:   map[string]string{"hardware_arch": "64", "hardware_type": "x86_64"},
			Resources: []string{"$S/assets/logo.bin"},
		},
		domain.UnitSpec{
			Name:      "arm",
			Rule:      rodata.RuleName,
			Flags:     []string{"ARCH_AARCH64"},
			Resources: []string{"$S/fonts/main.ttf"},
		},
	)

	plan, err := newPlanner(t).Plan(ws)
	require.NoError(t, err)
	require.Equal(t, 2, plan.Graph.StepCount())

	obj, ok := plan.Graph.GetStep(domain.NewInternedString("x86:$S/assets/logo.bin"))
	require.True(t, ok)
	assert.Equal(t, "x86", obj.Unit.String())
	assert.Equal(t, "$S/assets/logo.bin", obj.Resource)
	assert.Equal(t, "AS", obj.Descr.Tag)
	assert.Equal(t, []string{filepath.Join(ws.Root, "assets", "logo.bin")}, domain.Strings(obj.Inputs))
	assert.Equal(t, []string{filepath.Join(ws.BuildRoot, "assets", "logo.o")}, domain.Strings(obj.Outputs))
	assert.Equal(t, []string{rodata.YasmTool}, domain.Strings(obj.Tools))
	assert.Contains(t, obj.Flags, "dwarf2")

	src, ok := plan.Graph.GetStep(domain.NewInternedString("arm:$S/fonts/main.ttf"))
	require.True(t, ok)
	assert.Equal(t, "RD", src.Descr.Tag)
	assert.Equal(t, []string{filepath.Join(ws.BuildRoot, "fonts", "main.cpp")}, domain.Strings(src.Outputs))
	assert.Empty(t, src.Tools)

	cmd, ok := plan.Command(src.Name)
	require.True(t, ok)
	assert.IsType(t, &rodata.Source{}, cmd)
}

func TestPlan_Select(t *testing.T) {
	ws := workspace(t,
		domain.UnitSpec{Name: "a", Flags: []string{"ARCH_ARM"}, Resources: []string{"$S/one.bin", "$S/two.bin"}},
		domain.UnitSpec{Name: "b", Flags: []string{"ARCH_ARM"}, Resources: []string{"$S/sub/three.bin"}},
	)
	plan, err := newPlanner(t).Plan(ws)
	require.NoError(t, err)

	tests := []struct {
		name    string
		targets []string
		want    int
	}{
		{name: "everything", targets: nil, want: 3},
		{name: "step name", targets: []string{"a:$S/one.bin"}, want: 1},
		{name: "unit", targets: []string{"a"}, want: 2},
		{name: "relative resource", targets: []string{"sub/three.bin"}, want: 1},
		{name: "logical resource", targets: []string{"$S/two.bin"}, want: 1},
		{name: "mixed", targets: []string{"b", "one.bin"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := plan.Select(tt.targets)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub.Graph.StepCount())
		})
	}

	_, err = plan.Select([]string{"missing.bin"})
	require.ErrorIs(t, err, domain.ErrStepNotFound)
}

func TestPlanner_Plan_Errors(t *testing.T) {
	t.Run("unknown rule", func(t *testing.T) {
		ws := workspace(t, domain.UnitSpec{Name: "u", Rule: "nope", Resources: []string{"$S/a.bin"}})
		_, err := newPlanner(t).Plan(ws)
		require.ErrorIs(t, err, domain.ErrInvalidRule)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "u", zErr.Metadata()["unit"])
	})

	t.Run("include flag", func(t *testing.T) {
		ws := workspace(t, domain.UnitSpec{
			Name:      "u",
			Flags:     []string{"ARCH_X86_64"},
			Options:   map[string]string{"YASM_FLAGS": "-Ifoo"},
			Resources: []string{"$S/a.bin"},
		})
		_, err := newPlanner(t).Plan(ws)
		require.ErrorIs(t, err, domain.ErrIncludeFlag)
	})

	t.Run("output conflict", func(t *testing.T) {
		ws := workspace(t,
			domain.UnitSpec{Name: "u1", Flags: []string{"ARCH_ARM"}, Resources: []string{"$S/a.bin"}},
			domain.UnitSpec{Name: "u2", Flags: []string{"ARCH_ARM"}, Resources: []string{"$S/a.bin"}},
		)
		_, err := newPlanner(t).Plan(ws)
		require.ErrorIs(t, err, domain.ErrOutputConflict)
	})
}
