package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/loaders"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

const scenesDir = "scenes"

var (
	sceneFlag   = flag.String("scene", "spheres", "Built-in scene name, scene file name in scenes/, or path to a .sce file")
	configFlag  = flag.String("config", "", "Optional YAML render config")
	outFlag     = flag.String("out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	formatFlag  = flag.String("format", "tga", "Output format when -out is not given: tga or png")
	workersFlag = flag.Int("workers", -1, "Number of parallel workers, overrides the config (0 = CPU count)")
	depthFlag   = flag.Int("depth", -1, "Maximum reflection depth, overrides the scene")
	widthFlag   = flag.Int("width", 0, "Image width, overrides the scene camera")
	heightFlag  = flag.Int("height", 0, "Image height, overrides the scene camera")
	listFlag    = flag.Bool("list", false, "List available scenes and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [scene ...]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "Renders each scene argument, or -scene if none are given.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if *listFlag {
		if err := listScenes(); err != nil {
			glog.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	if *formatFlag != "tga" && *formatFlag != "png" {
		glog.Fatalf("Unsupported -format %q, want tga or png", *formatFlag)
	}

	config, err := loadConfig(*configFlag, *workersFlag, *depthFlag)
	if err != nil {
		glog.Fatalf("Error loading render config: %v", err)
	}

	jobs := flag.Args()
	if len(jobs) == 0 {
		jobs = []string{*sceneFlag}
	}
	if len(jobs) > 1 && *outFlag != "" {
		glog.Fatalf("-out can only be used with a single scene")
	}

	overrides := geometry.CameraConfig{Width: *widthFlag, Height: *heightFlag}
	for _, job := range jobs {
		if err := renderJob(job, config, overrides, *outFlag, *formatFlag); err != nil {
			glog.Fatalf("Error rendering %s: %v", job, err)
		}
	}
}

// renderJob loads, renders and saves one scene
func renderJob(sceneType string, config renderer.RenderConfig, overrides geometry.CameraConfig, outPath, format string) error {
	loadStart := time.Now()
	s, err := createScene(sceneType, overrides)
	if err != nil {
		return err
	}
	glog.Infof("Loaded %s in %v: %d objects (%d mesh triangles), %d lights",
		sceneType, time.Since(loadStart), s.GetPrimitiveCount(), s.GetTriangleCount(), len(s.Lights))

	r, err := renderer.NewRenderer(s, config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}
	img, stats, err := r.Render()
	if err != nil {
		return err
	}
	glog.Infof("Render completed in %v (%d workers, %d reflection rays)", stats.Elapsed, stats.Workers, stats.ReflectionRays)

	if outPath == "" {
		dir := createOutputDir(sceneType)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return xerrors.Errorf("while creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join(dir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	if err := loaders.SaveImage(outPath, img); err != nil {
		return err
	}
	glog.Infof("Render saved as %s", outPath)
	return nil
}

// createScene creates a built-in scene by name or loads a scene file
func createScene(sceneType string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, xerrors.New("no scene given")
	}
	if s, err := scene.NewBuiltInScene(sceneType, cameraOverrides...); err == nil {
		return s, nil
	}
	if path, ok := findSceneFile(sceneType); ok {
		return scene.NewSCEScene(path, cameraOverrides...)
	}
	return nil, xerrors.Errorf("unknown scene %q: not built in (%s) and no scene file found",
		sceneType, strings.Join(scene.BuiltInSceneNames(), ", "))
}

// findSceneFile resolves a scene argument to an existing .sce file, trying
// it as a path first and then as a name inside scenes/
func findSceneFile(sceneType string) (string, bool) {
	candidates := []string{sceneType}
	if !strings.HasSuffix(sceneType, ".sce") {
		candidates = append(candidates, filepath.Join(scenesDir, sceneType+".sce"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// createOutputDir returns the output directory for a scene
func createOutputDir(sceneType string) string {
	name := filepath.Base(sceneType)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "scene"
	}
	return filepath.Join("output", name)
}

// loadConfig reads the render config file, if any, and applies flag overrides
func loadConfig(path string, workers, depth int) (renderer.RenderConfig, error) {
	config := renderer.DefaultRenderConfig()
	if path != "" {
		var err error
		if config, err = renderer.LoadRenderConfig(path); err != nil {
			return renderer.RenderConfig{}, err
		}
	}
	if workers >= 0 {
		config.Workers = workers
	}
	if depth >= 0 {
		config.MaxDepthOverride = depth
	}
	return config, config.Validate()
}

// listScenes prints every built-in scene and scene file
func listScenes() error {
	groups, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, s := range group.Scenes {
			id := s.ID
			if s.FilePath != "" {
				id = s.FilePath
			}
			fmt.Printf("  %-24s %s", id, s.DisplayName)
			if s.Description != "" {
				fmt.Printf(" - %s", s.Description)
			}
			fmt.Println()
		}
	}
	return nil
}
