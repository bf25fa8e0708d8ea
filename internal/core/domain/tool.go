package domain

// Tool names exposed to protocol clients.
const (
	ToolLaunchEditor      = "launch_editor"
	ToolRunProject        = "run_project"
	ToolGetDebugOutput    = "get_debug_output"
	ToolStopProject       = "stop_project"
	ToolGetGodotVersion   = "get_godot_version"
	ToolListProjects      = "list_projects"
	ToolGetProjectInfo    = "get_project_info"
	ToolCreateScene       = "create_scene"
	ToolAddNode           = "add_node"
	ToolLoadSprite        = "load_sprite"
	ToolExportMeshLibrary = "export_mesh_library"
	ToolSaveScene         = "save_scene"
	ToolGetUID            = "get_uid"
	ToolUpdateProjectUIDs = "update_project_uids"
)

// Operation names understood by the operations script.
const (
	OpCreateScene       = "create_scene"
	OpAddNode           = "add_node"
	OpLoadSprite        = "load_sprite"
	OpExportMeshLibrary = "export_mesh_library"
	OpSaveScene         = "save_scene"
	OpGetUID            = "get_uid"
	OpResaveResources   = "resave_resources"
)

// Parameter names in the caller-facing (camelCase) convention.
const (
	ParamProjectPath    = "projectPath"
	ParamScenePath      = "scenePath"
	ParamRootNodeType   = "rootNodeType"
	ParamParentNodePath = "parentNodePath"
	ParamNodeType       = "nodeType"
	ParamNodeName       = "nodeName"
	ParamTexturePath    = "texturePath"
	ParamNodePath       = "nodePath"
	ParamOutputPath     = "outputPath"
	ParamMeshItemNames  = "meshItemNames"
	ParamNewPath        = "newPath"
	ParamFilePath       = "filePath"
	ParamDirectory      = "directory"
	ParamRecursive      = "recursive"
	ParamScene          = "scene"
	ParamProperties     = "properties"
)

// ToolParam describes one argument of a tool.
type ToolParam struct {
	Name        string
	Type        Kind
	Items       Kind
	Description string
	Required    bool
}

// Tool describes a remote-callable operation.
type Tool struct {
	Name        string
	Description string
	Params      []ToolParam
}

// Required returns the names of the required parameters in declaration order.
func (t Tool) Required() []string {
	var names []string
	for _, p := range t.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// InputSchema renders the parameters as a JSON Schema object.
func (t Tool) InputSchema() map[string]any {
	props := make(map[string]any, len(t.Params))
	for _, p := range t.Params {
		prop := map[string]any{
			"type":        p.Type.String(),
			"description": p.Description,
		}
		if p.Type == KindArray {
			prop["items"] = map[string]any{"type": p.Items.String()}
		}
		props[p.Name] = prop
	}

	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if req := t.Required(); len(req) > 0 {
		schema["required"] = req
	}
	return schema
}

// LookupTool returns the catalog entry for name.
func LookupTool(name string) (Tool, bool) {
	for _, t := range Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

var projectPathParam = ToolParam{
	Name:        ParamProjectPath,
	Type:        KindString,
	Description: "Path to the Godot project directory",
	Required:    true,
}

// Tools is the fixed tool catalog.
var Tools = []Tool{
	{
		Name:        ToolLaunchEditor,
		Description: "Launch Godot editor for a specific project",
		Params:      []ToolParam{projectPathParam},
	},
	{
		Name:        ToolRunProject,
		Description: "Run the Godot project and capture output",
		Params: []ToolParam{
			projectPathParam,
			{Name: ParamScene, Type: KindString, Description: "Optional: Specific scene to run"},
		},
	},
	{
		Name:        ToolGetDebugOutput,
		Description: "Get the current debug output and errors",
	},
	{
		Name:        ToolStopProject,
		Description: "Stop the currently running Godot project",
	},
	{
		Name:        ToolGetGodotVersion,
		Description: "Get the installed Godot version",
	},
	{
		Name:        ToolListProjects,
		Description: "List Godot projects in a directory",
		Params: []ToolParam{
			{Name: ParamDirectory, Type: KindString, Description: "Directory to search for Godot projects", Required: true},
			{Name: ParamRecursive, Type: KindBool, Description: "Whether to search recursively (default: false)"},
		},
	},
	{
		Name:        ToolGetProjectInfo,
		Description: "Retrieve metadata about a Godot project",
		Params:      []ToolParam{projectPathParam},
	},
	{
		Name:        ToolCreateScene,
		Description: "Create a new Godot scene file",
		Params: []ToolParam{
			projectPathParam,
			{Name: ParamScenePath, Type: KindString, Description: "Path where the scene file will be saved (relative to project)", Required: true},
			{Name: ParamRootNodeType, Type: KindString, Description: "Type of the root node (e.g., Node2D, Node3D)"},
		},
	},
	{
		Name:        ToolAddNode,
		Description: "Add a node to an existing scene",
		Params: []ToolParam{
			projectPathParam,
			{Name: ParamScenePath, Type: KindString, Description: "Path to the scene file (relative to project)", Required: true},
			{Name: ParamParentNodePath, Type: KindString, Description: `Path to the parent node (e.g., "root" or "root/Player")`},
			{Name: ParamNodeType, Type: KindString, Description: "Type of node to add (e.g., Sprite2D, CollisionShape2D)", Required: true},
			{Name: ParamNodeName, Type: KindString, Description: "Name for the new node", Required: true},
			{Name: ParamProperties, Type: KindMap, Description: "Optional properties to set on the node"},
		},
	},
	{
		Name:        ToolLoadSprite,
		Description: "Load a sprite into a Sprite2D node",
		Params: []ToolParam{
			projectPathParam,
			{Name: ParamScenePath, Type: KindString, Description: "Path to the scene file (relative to project)", Required: true},
			{Name: ParamNodePath, Type: KindString, Description: `Path to the Sprite2D node (e.g., "root/Player/Sprite2D")`, Required: true},
			{Name: ParamTexturePath, Type: KindString, Description: "Path to the texture file (relative to project)", Required: true},
		},
	},
	{
		Name:        ToolExportMeshLibrary,
		Description: "Export a scene as a MeshLibrary resource",
		Params: []ToolParam{
			projectPathParam,
			{Name: ParamScenePath, Type: KindString, Description: "Path to the scene file (.tscn) to export", Required: true},
			{Name: ParamOutputPath, Type: KindString, Description: "Path where the mesh library (.res) will be saved", Required: true},
			{Name: ParamMeshItemNames, Type: KindArray, Items: KindString, Description: "Optional: Names of specific mesh items to include (defaults to all)"},
		},
	},
	{
		Name:        ToolSaveScene,
		Description: "Save changes to a scene file",
		Params: []ToolParam{
			projectPathParam,
			{Name: ParamScenePath, Type: KindString, Description: "Path to the scene file (relative to project)", Required: true},
			{Name: ParamNewPath, Type: KindString, Description: "Optional: New path to save the scene to (for creating variants)"},
		},
	},
	{
		Name:        ToolGetUID,
		Description: "Get the UID for a specific file in a Godot project (for Godot 4.4+)",
		Params: []ToolParam{
			projectPathParam,
			{Name: ParamFilePath, Type: KindString, Description: "Path to the file (relative to project) for which to get the UID", Required: true},
		},
	},
	{
		Name:        ToolUpdateProjectUIDs,
		Description: "Update UID references in a Godot project by resaving resources (for Godot 4.4+)",
		Params:      []ToolParam{projectPathParam},
	},
}
