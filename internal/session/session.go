// Package session owns what one viewing session works on: the loaded cloud,
// its view state and color policy.
package session

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/philipparndt/lidarview/internal/config"
	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/lidar/txt"
	"github.com/philipparndt/lidarview/pkg/view"
)

// Session is created once per input file and discarded on exit
type Session struct {
	Path   string
	Config *config.Config
	Cloud  *lidar.PointCloud
	View   *view.ViewState
	Colors *view.ColorPolicy
}

// LoadCloud reads and classifies the input file
func LoadCloud(path string, cfg *config.Config) (*lidar.PointCloud, error) {
	cloud, err := txt.ReadFile(path, cfg.ReaderOptions())
	if err != nil {
		return nil, err
	}
	if cloud.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, view.ErrEmptyCloud)
	}

	classifier, err := cfg.Classifier(cloud)
	if err != nil {
		return nil, err
	}
	classifier.Classify(cloud)
	return cloud, nil
}

// Open loads the file and sets up the initial view
func Open(path string, cfg *config.Config) (*Session, error) {
	cloud, err := LoadCloud(path, cfg)
	if err != nil {
		return nil, err
	}

	state, err := view.NewViewState(cloud.Bounds())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyView(state); err != nil {
		return nil, err
	}

	colors, err := cfg.ColorPolicy()
	if err != nil {
		return nil, err
	}

	return &Session{
		Path:   path,
		Config: cfg,
		Cloud:  cloud,
		View:   state,
		Colors: colors,
	}, nil
}

// Reload re-reads the file, keeping camera and filters. On failure the
// previous cloud stays in place.
func (s *Session) Reload() error {
	cloud, err := LoadCloud(s.Path, s.Config)
	if err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	if err := s.View.Rebase(cloud.Bounds()); err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	s.Cloud = cloud
	glog.Infof("reloaded %s: %d points", s.Path, cloud.Size())
	return nil
}
