package app

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var sceneSolutions = []string{
	"Ensure the scene path is correct",
	"Use create_scene to create a new scene first",
}

// operation describes a one-shot call of the operations script.
type operation struct {
	name      string
	failure   string
	solutions []string
	success   func(res domain.Result) string
}

// failure turns a non-fatal error into an envelope. Fatal errors are passed through.
func (a *App) failure(message string, err error, solutions ...string) (domain.Response, error) {
	if domain.IsFatal(err) {
		return domain.Response{}, err
	}
	a.logger.Debug(message + ": " + err.Error())
	return domain.ErrorResponse(message+": "+err.Error(), solutions...), nil
}

func (a *App) run(ctx context.Context, op operation, params *domain.Params, projectPath string) (domain.Response, error) {
	res, err := a.executor.Execute(ctx, op.name, params, projectPath)
	if err != nil {
		return a.failure(op.failure, err, installSolutions...)
	}
	if res.Failed() {
		return domain.ErrorResponse(op.failure+": "+res.Stderr, op.solutions...), nil
	}
	return domain.TextResponse(op.success(res)), nil
}

// requireUIDSupport gates UID tools on the engine version.
func (a *App) requireUIDSupport(ctx context.Context, failure string) (domain.Response, bool, error) {
	version, err := a.executor.Version(ctx)
	if err != nil {
		res, ferr := a.failure(failure, err, installSolutions...)
		return res, false, ferr
	}
	if !domain.SupportsUIDs(version) {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "uids need godot 4.4"), "version", version)
		return a.reject(err,
			"UIDs are only supported in Godot 4.4 or later. Current version: "+version,
			uidSolutions...,
		), false, nil
	}
	return domain.Response{}, true, nil
}

func (a *App) launchEditor(ctx context.Context, args *domain.Params) (domain.Response, error) {
	projectPath, res, ok := a.requireProjectPath(args)
	if !ok {
		return res, nil
	}
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}

	const failure = "Failed to launch Godot editor"
	exe, err := a.locator.Resolve(ctx)
	if err != nil {
		return a.failure(failure, err, installSolutions...)
	}

	a.logger.Debug("launching editor for project: " + projectPath)
	if err := a.supervisor.Launch(exe, []string{domain.FlagEditor, domain.FlagPath, projectPath}); err != nil {
		return a.failure(failure, err, installSolutions...)
	}
	return domain.TextResponse("Godot editor launched successfully for project at " + projectPath + "."), nil
}

func (a *App) runProject(ctx context.Context, args *domain.Params) (domain.Response, error) {
	projectPath, res, ok := a.requireProjectPath(args)
	if !ok {
		return res, nil
	}
	if res, ok := a.requireSafe(args, domain.ParamScene); !ok {
		return res, nil
	}
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}

	const failure = "Failed to run Godot project"
	exe, err := a.locator.Resolve(ctx)
	if err != nil {
		return a.failure(failure, err, installSolutions...)
	}

	cmdArgs := []string{domain.FlagRunDebug, domain.FlagPath, projectPath}
	if scene := args.String(domain.ParamScene); scene != "" {
		cmdArgs = append(cmdArgs, scene)
	}

	a.logger.Debug("running project: " + projectPath)
	if err := a.supervisor.Start(exe, cmdArgs); err != nil {
		return a.failure(failure, err, installSolutions...)
	}
	return domain.TextResponse("Godot project started in debug mode. Use get_debug_output to see output."), nil
}

func (a *App) getDebugOutput(_ context.Context, _ *domain.Params) (domain.Response, error) {
	out, err := a.supervisor.Snapshot()
	if errors.Is(err, domain.ErrNoActiveProcess) {
		return domain.ErrorResponse("No active Godot process.",
			"Use run_project to start a Godot project first",
			"Check if the Godot process crashed unexpectedly",
		), nil
	}
	if err != nil {
		return domain.Response{}, err
	}
	return domain.JSONResponse(out)
}

type stopResult struct {
	Message     string   `json:"message"`
	FinalOutput []string `json:"finalOutput"`
	FinalErrors []string `json:"finalErrors"`
}

func (a *App) stopProject(_ context.Context, _ *domain.Params) (domain.Response, error) {
	out, err := a.supervisor.Stop()
	if errors.Is(err, domain.ErrNoActiveProcess) {
		return domain.ErrorResponse("No active Godot process to stop.",
			"Use run_project to start a Godot project first",
			"The process may have already terminated",
		), nil
	}
	if err != nil {
		return domain.Response{}, err
	}
	return domain.JSONResponse(stopResult{
		Message:     "Godot project stopped",
		FinalOutput: out.Output,
		FinalErrors: out.Errors,
	})
}

func (a *App) getGodotVersion(ctx context.Context, _ *domain.Params) (domain.Response, error) {
	version, err := a.executor.Version(ctx)
	if err != nil {
		return a.failure("Failed to get Godot version", err,
			"Ensure Godot is installed correctly",
			"Check if the GODOT_PATH environment variable is set correctly",
		)
	}
	return domain.TextResponse(version), nil
}

func (a *App) listProjects(_ context.Context, args *domain.Params) (domain.Response, error) {
	dir := args.String(domain.ParamDirectory)
	if dir == "" {
		err := zerr.With(zerr.Wrap(domain.ErrMissingParameter, domain.ParamDirectory), "field", domain.ParamDirectory)
		return a.reject(err, "Directory is required",
			"Provide a valid directory path to search for Godot projects"), nil
	}
	if !isSafePath(dir) {
		err := zerr.With(zerr.Wrap(domain.ErrUnsafePath, dir), "field", domain.ParamDirectory)
		return a.reject(err, "Invalid directory path", unsafePathSolution), nil
	}
	if !a.scanner.Exists(dir) {
		err := zerr.With(zerr.Wrap(domain.ErrDirectoryNotFound, dir), "path", dir)
		return a.reject(err, "Directory does not exist: "+dir,
			"Provide a valid directory path that exists on the system"), nil
	}

	v, _ := args.Get(domain.ParamRecursive)
	recursive, _ := v.AsBool()

	projects, err := a.scanner.FindProjects(dir, recursive)
	if err != nil {
		return a.failure("Failed to list projects", err,
			"Ensure the directory exists and is accessible",
			"Check if you have permission to read the directory",
		)
	}
	return domain.JSONResponse(projects)
}

func (a *App) getProjectInfo(ctx context.Context, args *domain.Params) (domain.Response, error) {
	projectPath, res, ok := a.requireProjectPath(args)
	if !ok {
		return res, nil
	}
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}

	info := domain.ProjectInfo{Path: projectPath}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		version, err := a.executor.Version(gctx)
		if err != nil {
			return err
		}
		info.GodotVersion = version
		return nil
	})
	g.Go(func() error {
		info.Structure = a.scanner.Structure(projectPath)
		info.Name = a.scanner.ProjectName(projectPath)
		return nil
	})
	if err := g.Wait(); err != nil {
		return a.failure("Failed to get project info", err, installSolutions...)
	}
	return domain.JSONResponse(info)
}

func (a *App) createScene(ctx context.Context, args *domain.Params) (domain.Response, error) {
	if res, ok := a.requireFields(args, "Provide valid paths for both the project and the scene",
		domain.ParamProjectPath, domain.ParamScenePath); !ok {
		return res, nil
	}
	if res, ok := a.requireSafe(args, domain.ParamProjectPath, domain.ParamScenePath); !ok {
		return res, nil
	}
	projectPath := args.String(domain.ParamProjectPath)
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}

	scenePath := args.String(domain.ParamScenePath)
	rootType := args.String(domain.ParamRootNodeType)
	if rootType == "" {
		rootType = "Node2D"
	}
	params := domain.NewParams().
		Set(domain.ParamScenePath, domain.String(scenePath)).
		Set(domain.ParamRootNodeType, domain.String(rootType))

	return a.run(ctx, operation{
		name:    domain.OpCreateScene,
		failure: "Failed to create scene",
		solutions: []string{
			"Check if the root node type is valid",
			"Ensure you have write permissions to the scene path",
			"Verify the scene path is valid",
		},
		success: func(res domain.Result) string {
			return "Scene created successfully at: " + scenePath + "\n\nOutput: " + res.Stdout
		},
	}, params, projectPath)
}

func (a *App) addNode(ctx context.Context, args *domain.Params) (domain.Response, error) {
	if res, ok := a.requireFields(args, "Provide projectPath, scenePath, nodeType, and nodeName",
		domain.ParamProjectPath, domain.ParamScenePath, domain.ParamNodeType, domain.ParamNodeName); !ok {
		return res, nil
	}
	if res, ok := a.requireSafe(args, domain.ParamProjectPath, domain.ParamScenePath); !ok {
		return res, nil
	}
	projectPath := args.String(domain.ParamProjectPath)
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}
	scenePath := args.String(domain.ParamScenePath)
	if res, ok := a.requireFile(projectPath, scenePath, "Scene file does not exist: ", sceneSolutions...); !ok {
		return res, nil
	}

	nodeType := args.String(domain.ParamNodeType)
	nodeName := args.String(domain.ParamNodeName)
	params := domain.NewParams().
		Set(domain.ParamScenePath, domain.String(scenePath)).
		Set(domain.ParamNodeType, domain.String(nodeType)).
		Set(domain.ParamNodeName, domain.String(nodeName))
	if parent := args.String(domain.ParamParentNodePath); parent != "" {
		params.Set(domain.ParamParentNodePath, domain.String(parent))
	}
	if props, ok := args.Get(domain.ParamProperties); ok && props.Present() {
		params.Set(domain.ParamProperties, props)
	}

	return a.run(ctx, operation{
		name:    domain.OpAddNode,
		failure: "Failed to add node",
		solutions: []string{
			"Check if the node type is valid",
			"Ensure the parent node path exists",
			"Verify the scene file is valid",
		},
		success: func(res domain.Result) string {
			return "Node '" + nodeName + "' of type '" + nodeType + "' added successfully to '" +
				scenePath + "'.\n\nOutput: " + res.Stdout
		},
	}, params, projectPath)
}

func (a *App) loadSprite(ctx context.Context, args *domain.Params) (domain.Response, error) {
	fields := []string{domain.ParamProjectPath, domain.ParamScenePath, domain.ParamNodePath, domain.ParamTexturePath}
	if res, ok := a.requireFields(args, "Provide projectPath, scenePath, nodePath, and texturePath", fields...); !ok {
		return res, nil
	}
	if res, ok := a.requireSafe(args, fields...); !ok {
		return res, nil
	}
	projectPath := args.String(domain.ParamProjectPath)
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}
	scenePath := args.String(domain.ParamScenePath)
	if res, ok := a.requireFile(projectPath, scenePath, "Scene file does not exist: ", sceneSolutions...); !ok {
		return res, nil
	}
	texturePath := args.String(domain.ParamTexturePath)
	if res, ok := a.requireFile(projectPath, texturePath, "Texture file does not exist: ",
		"Ensure the texture path is correct",
		"Upload or create the texture file first",
	); !ok {
		return res, nil
	}

	params := domain.NewParams().
		Set(domain.ParamScenePath, domain.String(scenePath)).
		Set(domain.ParamNodePath, domain.String(args.String(domain.ParamNodePath))).
		Set(domain.ParamTexturePath, domain.String(texturePath))

	return a.run(ctx, operation{
		name:    domain.OpLoadSprite,
		failure: "Failed to load sprite",
		solutions: []string{
			"Check if the node path is correct",
			"Ensure the node is a Sprite2D, Sprite3D, or TextureRect",
			"Verify the texture file is a valid image format",
		},
		success: func(res domain.Result) string {
			return "Sprite loaded successfully with texture: " + texturePath + "\n\nOutput: " + res.Stdout
		},
	}, params, projectPath)
}

func (a *App) exportMeshLibrary(ctx context.Context, args *domain.Params) (domain.Response, error) {
	fields := []string{domain.ParamProjectPath, domain.ParamScenePath, domain.ParamOutputPath}
	if res, ok := a.requireFields(args, "Provide projectPath, scenePath, and outputPath", fields...); !ok {
		return res, nil
	}
	if res, ok := a.requireSafe(args, fields...); !ok {
		return res, nil
	}
	projectPath := args.String(domain.ParamProjectPath)
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}
	scenePath := args.String(domain.ParamScenePath)
	if res, ok := a.requireFile(projectPath, scenePath, "Scene file does not exist: ", sceneSolutions...); !ok {
		return res, nil
	}

	outputPath := args.String(domain.ParamOutputPath)
	params := domain.NewParams().
		Set(domain.ParamScenePath, domain.String(scenePath)).
		Set(domain.ParamOutputPath, domain.String(outputPath))
	if names, ok := args.Get(domain.ParamMeshItemNames); ok && names.Kind() == domain.KindArray {
		params.Set(domain.ParamMeshItemNames, names)
	}

	return a.run(ctx, operation{
		name:    domain.OpExportMeshLibrary,
		failure: "Failed to export mesh library",
		solutions: []string{
			"Check if the scene contains valid 3D meshes",
			"Ensure the output path is valid",
			"Verify the scene file is valid",
		},
		success: func(res domain.Result) string {
			return "MeshLibrary exported successfully to: " + outputPath + "\n\nOutput: " + res.Stdout
		},
	}, params, projectPath)
}

func (a *App) saveScene(ctx context.Context, args *domain.Params) (domain.Response, error) {
	if res, ok := a.requireFields(args, "Provide projectPath and scenePath",
		domain.ParamProjectPath, domain.ParamScenePath); !ok {
		return res, nil
	}
	if res, ok := a.requireSafe(args, domain.ParamProjectPath, domain.ParamScenePath); !ok {
		return res, nil
	}
	newPath := args.String(domain.ParamNewPath)
	if newPath != "" && !isSafePath(newPath) {
		err := zerr.With(zerr.Wrap(domain.ErrUnsafePath, newPath), "field", domain.ParamNewPath)
		return a.reject(err, "Invalid new path",
			`Provide a valid new path without ".." or other potentially unsafe characters`), nil
	}
	projectPath := args.String(domain.ParamProjectPath)
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}
	scenePath := args.String(domain.ParamScenePath)
	if res, ok := a.requireFile(projectPath, scenePath, "Scene file does not exist: ", sceneSolutions...); !ok {
		return res, nil
	}

	params := domain.NewParams().Set(domain.ParamScenePath, domain.String(scenePath))
	savedTo := scenePath
	if newPath != "" {
		params.Set(domain.ParamNewPath, domain.String(newPath))
		savedTo = newPath
	}

	return a.run(ctx, operation{
		name:    domain.OpSaveScene,
		failure: "Failed to save scene",
		solutions: []string{
			"Check if the scene file is valid",
			"Ensure you have write permissions to the output path",
			"Verify the scene can be properly packed",
		},
		success: func(res domain.Result) string {
			return "Scene saved successfully to: " + savedTo + "\n\nOutput: " + res.Stdout
		},
	}, params, projectPath)
}

func (a *App) getUID(ctx context.Context, args *domain.Params) (domain.Response, error) {
	if res, ok := a.requireFields(args, "Provide projectPath and filePath",
		domain.ParamProjectPath, domain.ParamFilePath); !ok {
		return res, nil
	}
	if res, ok := a.requireSafe(args, domain.ParamProjectPath, domain.ParamFilePath); !ok {
		return res, nil
	}
	projectPath := args.String(domain.ParamProjectPath)
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}
	filePath := args.String(domain.ParamFilePath)
	if res, ok := a.requireFile(projectPath, filePath, "File does not exist: ",
		"Ensure the file path is correct"); !ok {
		return res, nil
	}

	const failure = "Failed to get UID"
	if res, ok, err := a.requireUIDSupport(ctx, failure); !ok {
		return res, err
	}

	params := domain.NewParams().Set(domain.ParamFilePath, domain.String(filePath))
	return a.run(ctx, operation{
		name:    domain.OpGetUID,
		failure: failure,
		solutions: []string{
			"Check if the file is a valid Godot resource",
			"Ensure the file path is correct",
		},
		success: func(res domain.Result) string {
			return "UID for " + filePath + ": " + strings.TrimSpace(res.Stdout)
		},
	}, params, projectPath)
}

func (a *App) updateProjectUIDs(ctx context.Context, args *domain.Params) (domain.Response, error) {
	projectPath, res, ok := a.requireProjectPath(args)
	if !ok {
		return res, nil
	}
	if res, ok := a.requireProject(projectPath); !ok {
		return res, nil
	}

	const failure = "Failed to update project UIDs"
	if res, ok, err := a.requireUIDSupport(ctx, failure); !ok {
		return res, err
	}

	params := domain.NewParams().Set(domain.ParamProjectPath, domain.String(projectPath))
	return a.run(ctx, operation{
		name:    domain.OpResaveResources,
		failure: failure,
		solutions: []string{
			"Check if the project is valid",
			"Ensure you have write permissions to the project directory",
		},
		success: func(res domain.Result) string {
			return "Project UIDs updated successfully.\n\nOutput: " + res.Stdout
		},
	}, params, projectPath)
}
