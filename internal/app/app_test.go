package app_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/gdmcp/internal/adapters/telemetry"
	"go.trai.ch/gdmcp/internal/app"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports/mocks"
	"go.trai.ch/gdmcp/internal/engine/codec"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app        *app.App
	executor   *mocks.MockOperationExecutor
	supervisor *mocks.MockSupervisor
	locator    *mocks.MockLocator
	scanner    *mocks.MockProjectScanner
	logger     *mocks.MockLogger

	mu    sync.Mutex
	debug []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		executor:   mocks.NewMockOperationExecutor(ctrl),
		supervisor: mocks.NewMockSupervisor(ctrl),
		locator:    mocks.NewMockLocator(ctrl),
		scanner:    mocks.NewMockProjectScanner(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.debug = append(f.debug, msg)
	}).AnyTimes()

	metrics := telemetry.NewMetricStore(clockwork.NewFakeClock(), 10, nil)
	f.app = app.New(codec.Default(), f.executor, f.supervisor, f.locator, f.scanner,
		telemetry.NewNoOpTracer(), metrics, f.logger)
	return f
}

func (f *fixture) call(t *testing.T, tool, args string) domain.Response {
	t.Helper()
	params, err := domain.ParseParams([]byte(args))
	require.NoError(t, err)

	res, err := f.app.Call(context.Background(), tool, params)
	require.NoError(t, err)
	return res
}

// lastDebug returns the most recent debug line.
func (f *fixture) lastDebug() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.debug) == 0 {
		return ""
	}
	return f.debug[len(f.debug)-1]
}

func solutions(res domain.Response) string {
	if len(res.Content) < 2 {
		return ""
	}
	return res.Content[1].Text
}

func TestApp_Call_UnknownTool(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Call(context.Background(), "delete_everything", domain.NewParams())
	require.ErrorIs(t, err, domain.ErrUnknownTool)
}

func TestApp_Call_RejectsParentSegments(t *testing.T) {
	tests := []struct {
		tool    string
		args    string
		message string
	}{
		{domain.ToolLaunchEditor, `{"projectPath":"/games/../etc"}`, "Invalid project path"},
		{domain.ToolRunProject, `{"project_path":"/games/.."}`, "Invalid project path"},
		{domain.ToolRunProject, `{"projectPath":"/games/p","scene":"../../etc/evil.tscn"}`, "Invalid path"},
		{domain.ToolGetProjectInfo, `{"projectPath":"../game"}`, "Invalid project path"},
		{domain.ToolUpdateProjectUIDs, `{"projectPath":"/a/../b"}`, "Invalid project path"},
		{domain.ToolListProjects, `{"directory":"/home/.."}`, "Invalid directory path"},
		{domain.ToolCreateScene, `{"projectPath":"/g","scenePath":"../x.tscn"}`, "Invalid path"},
		{domain.ToolAddNode, `{"projectPath":"/g","scene_path":"a/../b.tscn","nodeType":"Node","nodeName":"n"}`, "Invalid path"},
		{domain.ToolLoadSprite, `{"projectPath":"/g","scenePath":"s.tscn","nodePath":"root","texturePath":"../t.png"}`, "Invalid path"},
		{domain.ToolExportMeshLibrary, `{"projectPath":"/g","scenePath":"s.tscn","outputPath":"../lib.res"}`, "Invalid path"},
		{domain.ToolSaveScene, `{"projectPath":"/g","scenePath":"s.tscn","newPath":"../copy.tscn"}`, "Invalid new path"},
		{domain.ToolGetUID, `{"projectPath":"/g","file_path":"../x.gd"}`, "Invalid path"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			// No expectations: any filesystem or process interaction fails the test.
			f := newFixture(t)

			res := f.call(t, tt.tool, tt.args)
			assert.True(t, res.IsError)
			assert.Equal(t, tt.message, res.Text())
			assert.Contains(t, solutions(res), `".."`)
			assert.Contains(t, f.lastDebug(), domain.ErrUnsafePath.Error())
		})
	}
}

func TestApp_Call_MissingField(t *testing.T) {
	tests := []struct {
		tool     string
		args     string
		message  string
		solution string
	}{
		{domain.ToolLaunchEditor, `{}`, "Project path is required", "Provide a valid path to a Godot project directory"},
		{domain.ToolListProjects, `{"recursive":true}`, "Directory is required", "Provide a valid directory path to search for Godot projects"},
		{domain.ToolCreateScene, `{"projectPath":"/g"}`, "Missing required parameter: scenePath", "Provide valid paths for both the project and the scene"},
		{domain.ToolAddNode, `{"projectPath":"/g","scenePath":"s.tscn","nodeType":"Node2D"}`, "Missing required parameter: nodeName", "Provide projectPath, scenePath, nodeType, and nodeName"},
		{domain.ToolExportMeshLibrary, `{"projectPath":"/g","scenePath":"s.tscn","outputPath":""}`, "Missing required parameter: outputPath", "Provide projectPath, scenePath, and outputPath"},
		{domain.ToolGetUID, `{"project_path":"/g"}`, "Missing required parameter: filePath", "Provide projectPath and filePath"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			f := newFixture(t)

			res := f.call(t, tt.tool, tt.args)
			assert.True(t, res.IsError)
			assert.Equal(t, tt.message, res.Text())
			assert.Equal(t, "Possible solutions:\n- "+tt.solution, solutions(res))
			assert.Contains(t, f.lastDebug(), domain.ErrMissingParameter.Error())
		})
	}
}

func TestApp_Call_NotAProject(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().IsProject("/games/empty").Return(false)

	res := f.call(t, domain.ToolCreateScene, `{"projectPath":"/games/empty","scenePath":"main.tscn"}`)
	assert.True(t, res.IsError)
	assert.Equal(t, "Not a valid Godot project: /games/empty", res.Text())
	assert.Contains(t, solutions(res), "Use list_projects to find valid Godot projects")
	assert.Contains(t, f.lastDebug(), domain.ErrNotAProject.Error())
}

func TestApp_ListProjects(t *testing.T) {
	t.Run("lists marked folders only", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().Exists("/games").Return(true)
		f.scanner.EXPECT().FindProjects("/games", false).Return([]domain.ProjectEntry{
			{Path: "/games/platformer", Name: "platformer"},
		}, nil)

		res := f.call(t, domain.ToolListProjects, `{"directory":"/games","recursive":false}`)
		require.False(t, res.IsError)
		assert.Equal(t, "[\n  {\n    \"path\": \"/games/platformer\",\n    \"name\": \"platformer\"\n  }\n]", res.Text())
	})

	t.Run("recursive only for boolean true", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().Exists("/games").Return(true).Times(2)
		f.scanner.EXPECT().FindProjects("/games", false).Return([]domain.ProjectEntry{}, nil)
		f.scanner.EXPECT().FindProjects("/games", true).Return([]domain.ProjectEntry{}, nil)

		res := f.call(t, domain.ToolListProjects, `{"directory":"/games","recursive":"true"}`)
		assert.Equal(t, "[]", res.Text())
		res = f.call(t, domain.ToolListProjects, `{"directory":"/games","recursive":true}`)
		assert.Equal(t, "[]", res.Text())
	})

	t.Run("missing directory", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().Exists("/nowhere").Return(false)

		res := f.call(t, domain.ToolListProjects, `{"directory":"/nowhere"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "Directory does not exist: /nowhere", res.Text())
		assert.Contains(t, f.lastDebug(), domain.ErrDirectoryNotFound.Error())
	})

	t.Run("scan failure", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().Exists("/games").Return(true)
		f.scanner.EXPECT().FindProjects("/games", false).Return(nil, zerr.New("permission denied"))

		res := f.call(t, domain.ToolListProjects, `{"directory":"/games"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "Failed to list projects: permission denied", res.Text())
	})
}

func TestApp_CreateScene(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.executor.EXPECT().Execute(gomock.Any(), domain.OpCreateScene, gomock.Any(), "/p").
			DoAndReturn(func(_ context.Context, _ string, params *domain.Params, _ string) (domain.Result, error) {
				out, err := params.MarshalJSON()
				require.NoError(t, err)
				assert.Equal(t, `{"scenePath":"scenes/main.tscn","rootNodeType":"Node2D"}`, string(out))
				return domain.Result{Stdout: "saved"}, nil
			})

		res := f.call(t, domain.ToolCreateScene, `{"project_path":"/p","scene_path":"scenes/main.tscn"}`)
		require.False(t, res.IsError)
		assert.Equal(t, "Scene created successfully at: scenes/main.tscn\n\nOutput: saved", res.Text())
	})

	t.Run("script failure carries stderr", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.executor.EXPECT().Execute(gomock.Any(), domain.OpCreateScene, gomock.Any(), "/p").
			Return(domain.Result{Stderr: "Failed to instantiate Node9D", ExitCode: 1}, nil)

		res := f.call(t, domain.ToolCreateScene, `{"projectPath":"/p","scenePath":"a.tscn","rootNodeType":"Node9D"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "Failed to create scene: Failed to instantiate Node9D", res.Text())
		assert.Contains(t, solutions(res), "Check if the root node type is valid")
	})

	t.Run("spawn failure", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.executor.EXPECT().Execute(gomock.Any(), domain.OpCreateScene, gomock.Any(), "/p").
			Return(domain.Result{}, zerr.Wrap(domain.ErrSpawnFailed, "sh missing"))

		res := f.call(t, domain.ToolCreateScene, `{"projectPath":"/p","scenePath":"a.tscn"}`)
		assert.True(t, res.IsError)
		assert.True(t, strings.HasPrefix(res.Text(), "Failed to create scene: sh missing"))
		assert.Contains(t, solutions(res), "Check if the GODOT_PATH environment variable is set correctly")
	})

	t.Run("fatal locator error propagates", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.executor.EXPECT().Execute(gomock.Any(), domain.OpCreateScene, gomock.Any(), "/p").
			Return(domain.Result{}, zerr.Wrap(domain.ErrInvalidOverride, "override does not validate"))

		params, err := domain.ParseParams([]byte(`{"projectPath":"/p","scenePath":"a.tscn"}`))
		require.NoError(t, err)
		_, err = f.app.Call(context.Background(), domain.ToolCreateScene, params)
		require.ErrorIs(t, err, domain.ErrInvalidOverride)
	})
}

func TestApp_AddNode(t *testing.T) {
	t.Run("missing scene file", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.scanner.EXPECT().Exists(filepath.Join("/p", "s.tscn")).Return(false)

		res := f.call(t, domain.ToolAddNode, `{"projectPath":"/p","scenePath":"s.tscn","nodeType":"Sprite2D","nodeName":"Hero"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "Scene file does not exist: s.tscn", res.Text())
	})

	t.Run("optional fields pass through", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.scanner.EXPECT().Exists(filepath.Join("/p", "s.tscn")).Return(true)
		f.executor.EXPECT().Execute(gomock.Any(), domain.OpAddNode, gomock.Any(), "/p").
			DoAndReturn(func(_ context.Context, _ string, params *domain.Params, _ string) (domain.Result, error) {
				out, err := params.MarshalJSON()
				require.NoError(t, err)
				assert.Equal(t,
					`{"scenePath":"s.tscn","nodeType":"Sprite2D","nodeName":"Hero","parentNodePath":"root/World","properties":{"zIndex":2}}`,
					string(out))
				return domain.Result{Stdout: "ok"}, nil
			})

		res := f.call(t, domain.ToolAddNode,
			`{"projectPath":"/p","scenePath":"s.tscn","nodeType":"Sprite2D","nodeName":"Hero","parent_node_path":"root/World","properties":{"z_index":2}}`)
		require.False(t, res.IsError)
		assert.Equal(t, "Node 'Hero' of type 'Sprite2D' added successfully to 's.tscn'.\n\nOutput: ok", res.Text())
	})
}

func TestApp_LoadSprite_MissingTexture(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().IsProject("/p").Return(true)
	f.scanner.EXPECT().Exists(filepath.Join("/p", "s.tscn")).Return(true)
	f.scanner.EXPECT().Exists(filepath.Join("/p", "art/hero.png")).Return(false)

	res := f.call(t, domain.ToolLoadSprite, `{"projectPath":"/p","scenePath":"s.tscn","nodePath":"root/Hero","texturePath":"art/hero.png"}`)
	assert.True(t, res.IsError)
	assert.Equal(t, "Texture file does not exist: art/hero.png", res.Text())
	assert.Contains(t, f.lastDebug(), domain.ErrFileNotFound.Error())
}

func TestApp_ExportMeshLibrary_MeshNamesMustBeArray(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().IsProject("/p").Return(true)
	f.scanner.EXPECT().Exists(filepath.Join("/p", "kit.tscn")).Return(true)
	f.executor.EXPECT().Execute(gomock.Any(), domain.OpExportMeshLibrary, gomock.Any(), "/p").
		DoAndReturn(func(_ context.Context, _ string, params *domain.Params, _ string) (domain.Result, error) {
			assert.False(t, params.Has(domain.ParamMeshItemNames))
			return domain.Result{Stdout: "exported"}, nil
		})

	res := f.call(t, domain.ToolExportMeshLibrary, `{"projectPath":"/p","scenePath":"kit.tscn","outputPath":"kit.meshlib","meshItemNames":"Wall"}`)
	require.False(t, res.IsError)
	assert.Equal(t, "MeshLibrary exported successfully to: kit.meshlib\n\nOutput: exported", res.Text())
}

func TestApp_SaveScene_NewPath(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().IsProject("/p").Return(true)
	f.scanner.EXPECT().Exists(filepath.Join("/p", "a.tscn")).Return(true)
	f.executor.EXPECT().Execute(gomock.Any(), domain.OpSaveScene, gomock.Any(), "/p").
		Return(domain.Result{Stdout: "packed"}, nil)

	res := f.call(t, domain.ToolSaveScene, `{"projectPath":"/p","scenePath":"a.tscn","newPath":"b.tscn"}`)
	require.False(t, res.IsError)
	assert.Equal(t, "Scene saved successfully to: b.tscn\n\nOutput: packed", res.Text())
}

func TestApp_GetUID(t *testing.T) {
	expectFile := func(f *fixture) {
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.scanner.EXPECT().Exists(filepath.Join("/p", "player.gd")).Return(true)
	}

	t.Run("old engine is refused", func(t *testing.T) {
		f := newFixture(t)
		expectFile(f)
		f.executor.EXPECT().Version(gomock.Any()).Return("4.3.0.stable", nil)

		res := f.call(t, domain.ToolGetUID, `{"projectPath":"/p","filePath":"player.gd"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "UIDs are only supported in Godot 4.4 or later. Current version: 4.3.0.stable", res.Text())
		assert.Contains(t, f.lastDebug(), domain.ErrUnsupportedVersion.Error())
	})

	t.Run("supported engine", func(t *testing.T) {
		f := newFixture(t)
		expectFile(f)
		f.executor.EXPECT().Version(gomock.Any()).Return("4.4.1.stable", nil)
		f.executor.EXPECT().Execute(gomock.Any(), domain.OpGetUID, gomock.Any(), "/p").
			DoAndReturn(func(_ context.Context, _ string, params *domain.Params, _ string) (domain.Result, error) {
				assert.Equal(t, []string{domain.ParamFilePath}, params.Keys())
				return domain.Result{Stdout: "uid://c4kd8\n"}, nil
			})

		res := f.call(t, domain.ToolGetUID, `{"projectPath":"/p","filePath":"player.gd"}`)
		require.False(t, res.IsError)
		assert.Equal(t, "UID for player.gd: uid://c4kd8", res.Text())
	})

	t.Run("missing file", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.scanner.EXPECT().Exists(filepath.Join("/p", "gone.gd")).Return(false)

		res := f.call(t, domain.ToolGetUID, `{"projectPath":"/p","filePath":"gone.gd"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "File does not exist: gone.gd", res.Text())
	})
}

func TestApp_UpdateProjectUIDs(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().IsProject("/p").Return(true)
	f.executor.EXPECT().Version(gomock.Any()).Return("5.0.0.stable", nil)
	f.executor.EXPECT().Execute(gomock.Any(), domain.OpResaveResources, gomock.Any(), "/p").
		DoAndReturn(func(_ context.Context, _ string, params *domain.Params, _ string) (domain.Result, error) {
			assert.Equal(t, "/p", params.String(domain.ParamProjectPath))
			return domain.Result{Stdout: "resaved 12"}, nil
		})

	res := f.call(t, domain.ToolUpdateProjectUIDs, `{"projectPath":"/p"}`)
	require.False(t, res.IsError)
	assert.Equal(t, "Project UIDs updated successfully.\n\nOutput: resaved 12", res.Text())
}

func TestApp_Supervision(t *testing.T) {
	t.Run("run project starts the debug process", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.locator.EXPECT().Resolve(gomock.Any()).Return("/usr/bin/godot", nil)
		f.supervisor.EXPECT().Start("/usr/bin/godot", []string{"-d", "--path", "/p", "res://main.tscn"}).Return(nil)

		res := f.call(t, domain.ToolRunProject, `{"projectPath":"/p","scene":"res://main.tscn"}`)
		require.False(t, res.IsError)
		assert.Equal(t, "Godot project started in debug mode. Use get_debug_output to see output.", res.Text())
	})

	t.Run("unsafe scene is refused before spawning", func(t *testing.T) {
		f := newFixture(t)

		res := f.call(t, domain.ToolRunProject, `{"projectPath":"/p","scene":"../outside.tscn"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "Invalid path", res.Text())
	})

	t.Run("spawn failure", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.locator.EXPECT().Resolve(gomock.Any()).Return("/usr/bin/godot", nil)
		f.supervisor.EXPECT().Start(gomock.Any(), gomock.Any()).Return(zerr.Wrap(domain.ErrSpawnFailed, "exec format error"))

		res := f.call(t, domain.ToolRunProject, `{"projectPath":"/p"}`)
		assert.True(t, res.IsError)
		assert.True(t, strings.HasPrefix(res.Text(), "Failed to run Godot project: exec format error"))
	})

	t.Run("launch editor", func(t *testing.T) {
		f := newFixture(t)
		f.scanner.EXPECT().IsProject("/p").Return(true)
		f.locator.EXPECT().Resolve(gomock.Any()).Return("/usr/bin/godot", nil)
		f.supervisor.EXPECT().Launch("/usr/bin/godot", []string{"-e", "--path", "/p"}).Return(nil)

		res := f.call(t, domain.ToolLaunchEditor, `{"projectPath":"/p"}`)
		assert.Equal(t, "Godot editor launched successfully for project at /p.", res.Text())
	})

	t.Run("idle", func(t *testing.T) {
		f := newFixture(t)
		f.supervisor.EXPECT().Stop().Return(domain.ProcessOutput{}, domain.ErrNoActiveProcess)
		f.supervisor.EXPECT().Snapshot().Return(domain.ProcessOutput{}, domain.ErrNoActiveProcess)

		res := f.call(t, domain.ToolStopProject, `{}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "No active Godot process to stop.", res.Text())
		assert.Contains(t, solutions(res), "The process may have already terminated")

		res = f.call(t, domain.ToolGetDebugOutput, `{}`)
		assert.True(t, res.IsError)
		assert.Equal(t, "No active Godot process.", res.Text())
	})

	t.Run("output and stop", func(t *testing.T) {
		f := newFixture(t)
		out := domain.ProcessOutput{Output: []string{"ready"}, Errors: []string{}}
		f.supervisor.EXPECT().Snapshot().Return(out, nil)
		f.supervisor.EXPECT().Stop().Return(out, nil)

		res := f.call(t, domain.ToolGetDebugOutput, `{}`)
		assert.JSONEq(t, `{"output":["ready"],"errors":[]}`, res.Text())

		res = f.call(t, domain.ToolStopProject, `{}`)
		assert.JSONEq(t, `{"message":"Godot project stopped","finalOutput":["ready"],"finalErrors":[]}`, res.Text())
	})
}

func TestApp_GetGodotVersion(t *testing.T) {
	f := newFixture(t)
	f.executor.EXPECT().Version(gomock.Any()).Return("4.4.1.stable.official", nil)

	res := f.call(t, domain.ToolGetGodotVersion, `{}`)
	assert.Equal(t, "4.4.1.stable.official", res.Text())

	f.executor.EXPECT().Version(gomock.Any()).Return("", zerr.Wrap(domain.ErrVersionQueryFailed, "exit status 1"))
	res = f.call(t, domain.ToolGetGodotVersion, `{}`)
	assert.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(res.Text(), "Failed to get Godot version: exit status 1"))
}

func TestApp_GetProjectInfo(t *testing.T) {
	f := newFixture(t)
	f.scanner.EXPECT().IsProject("/games/hero").Return(true)
	f.executor.EXPECT().Version(gomock.Any()).Return("4.4.1.stable", nil)
	f.scanner.EXPECT().Structure("/games/hero").Return(domain.ProjectStructure{Scenes: 2, Scripts: 3, Assets: 1})
	f.scanner.EXPECT().ProjectName("/games/hero").Return("Hero Quest")

	res := f.call(t, domain.ToolGetProjectInfo, `{"projectPath":"/games/hero"}`)
	require.False(t, res.IsError)
	assert.JSONEq(t, `{
		"name":"Hero Quest",
		"path":"/games/hero",
		"godotVersion":"4.4.1.stable",
		"structure":{"scenes":2,"scripts":3,"assets":1,"other":0}
	}`, res.Text())
}

func TestApp_Locate(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Resolve(gomock.Any()).Return("/usr/bin/godot", nil)
	f.executor.EXPECT().Version(gomock.Any()).Return("4.4.1.stable", nil)

	path, version, err := f.app.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/godot", path)
	assert.Equal(t, "4.4.1.stable", version)
}

func TestApp_Tools(t *testing.T) {
	f := newFixture(t)
	assert.Len(t, f.app.Tools(), 14)
}

func TestApp_Call_RecordsSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctrl := gomock.NewController(t)
	executor := mocks.NewMockOperationExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	executor.EXPECT().Version(gomock.Any()).Return("4.4.1.stable", nil)

	a := app.New(codec.Default(), executor, mocks.NewMockSupervisor(ctrl), mocks.NewMockLocator(ctrl),
		mocks.NewMockProjectScanner(ctrl), telemetry.NewOTelTracer(tp),
		telemetry.NewMetricStore(clockwork.NewFakeClock(), 10, nil), logger)

	params, err := domain.ParseParams([]byte(`{"verbose":true,"project_path":"/p"}`))
	require.NoError(t, err)
	res, err := a.Call(context.Background(), domain.ToolGetGodotVersion, params)
	require.NoError(t, err)
	require.False(t, res.IsError)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tool."+domain.ToolGetGodotVersion, spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("tool", domain.ToolGetGodotVersion))
	assert.Contains(t, spans[0].Attributes(), attribute.StringSlice("args", []string{"verbose", "projectPath"}))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("is_error", false))
}
