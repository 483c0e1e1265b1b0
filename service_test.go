package plg_test

import (
	"context"
	"embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/plg"
	"github.com/viant/plg/internal/logging"
	"github.com/viant/plg/model"
	"github.com/viant/plg/progress"
	"github.com/viant/plg/service/codec"
)

//go:embed testdata/*
var embedFS embed.FS

func TestService_ImportExport(t *testing.T) {
	ctx := context.Background()
	tracker := progress.NewTracker(nil)
	srv := plg.New(
		plg.WithFsOptions(&embedFS),
		plg.WithLogger(logging.NewNop()),
		plg.WithVisualizer(tracker),
	)

	result, err := srv.Import(ctx, "embed:///testdata/order.plg")
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "order handling", result.Process.Name())
	assert.Equal(t, 3, tracker.Snapshot().Value)

	URL := "mem://localhost/plg/export/order.plg"
	require.NoError(t, srv.Export(ctx, result.Process, URL))
	data, err := afs.New().DownloadWithURL(ctx, URL)
	require.NoError(t, err)

	encoded, err := srv.Encode(result.Process)
	require.NoError(t, err)
	assert.Equal(t, string(encoded), string(data))

	decoded, err := srv.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, result.Process.Size(), decoded.Process.Size())
}

func TestService_Import_Warnings(t *testing.T) {
	srv := plg.New(plg.WithFsOptions(&embedFS), plg.WithLogger(logging.NewNop()))
	result, err := srv.Import(context.Background(), "embed:///testdata/loop.plg")
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.ErrorIs(t, result.Warnings[0], model.ErrIllegalSequence)

	_, err = srv.Import(context.Background(), "embed:///testdata/missing.plg")
	assert.Error(t, err)

	_, err = srv.Decode([]byte("<process><meta><name>x</name></meta></process>"))
	assert.ErrorIs(t, err, codec.ErrUnsupportedFormat)
}

func TestService_Repository(t *testing.T) {
	ctx := context.Background()
	config, err := plg.LoadConfig(ctx, "embed:///testdata/config.yaml", &embedFS)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "mem://localhost/plg/processes", config.Storage.BaseURL)
	assert.Equal(t, codec.LibraryName, config.Codec.LibraryName)

	srv := plg.New(plg.WithConfig(config), plg.WithFsOptions(&embedFS), plg.WithLogger(logging.NewNop()))
	result, err := srv.Import(ctx, "embed:///testdata/order.plg")
	require.NoError(t, err)

	repository, err := srv.Repository(ctx)
	require.NoError(t, err)
	require.NoError(t, repository.Save(ctx, result.Process))

	loaded, err := repository.Load(ctx, result.Process.ID())
	require.NoError(t, err)
	assert.Equal(t, result.Process.Size(), loaded.Size())

	data, err := afs.New().DownloadWithURL(ctx, "mem://localhost/plg/processes/"+result.Process.ID()+".plg")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n    <meta>"))

	memory, err := plg.New(plg.WithLogger(logging.NewNop())).Repository(ctx)
	require.NoError(t, err)
	require.NoError(t, memory.Save(ctx, result.Process))
	all, err := memory.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, plg.DefaultConfig().Validate())

	_, err := plg.LoadConfig(context.Background(), "embed:///testdata/invalid_config.yaml", &embedFS)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "codec.libraryName")

	config := plg.DefaultConfig()
	config.Tracing.Output = "trace.json"
	assert.Error(t, config.Validate())
}
