package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/services"
	"github.com/ersonp/regnal/internal/infrastructure/dataset"
)

// app wires the built-in data set the way the CLI does.
type app struct {
	catalog  *entities.Catalog
	view     *handlers.ViewHandler
	detail   *handlers.DetailHandler
	timeline *handlers.TimelineHandler
	stats    *handlers.StatsHandler
}

var testApp *app

func TestMain(m *testing.M) {
	var err error
	testApp, err = newApp(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading built-in data set: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func newApp(ctx context.Context) (*app, error) {
	raw, err := dataset.Default()
	if err != nil {
		return nil, err
	}

	result, err := services.NewImportService().Import(ctx, raw, services.ImportOptions{Strict: true})
	if err != nil {
		return nil, err
	}

	return newAppFromCatalog(result.Catalog), nil
}

func newAppFromCatalog(catalog *entities.Catalog) *app {
	cs := services.NewCatalogService(catalog)
	return &app{
		catalog:  catalog,
		view:     handlers.NewViewHandler(cs, services.NewQueryService()),
		detail:   handlers.NewDetailHandler(cs, services.NewDetailService(cs.Details())),
		timeline: handlers.NewTimelineHandler(cs, services.NewTimelineService()),
		stats:    handlers.NewStatsHandler(cs),
	}
}

func rulerNames(rulers []entities.Ruler) []string {
	names := make([]string, len(rulers))
	for i, r := range rulers {
		names[i] = r.Name
	}
	return names
}

func groupLabels(groups []entities.Group) []string {
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	return labels
}
