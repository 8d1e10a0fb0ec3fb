package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"history", "statuses", "bulk"} {
		assert.True(t, names[name], "falta el subcomando %q", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "reconcile", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	flag := rootCmd.PersistentFlags().Lookup("json")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestHistoryCommand_Subcommands(t *testing.T) {
	for _, c := range historyCmd.Commands() {
		require.NotNil(t, c.Flags().Lookup("code"), "%s debe aceptar --code", c.Name())
	}
	assert.Len(t, historyCmd.Commands(), 4)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, entity.BulkOperationProgress{
		Total: 3, Completed: 2, Succeeded: 1, Cancelled: true,
		Errors:       []entity.BulkUnitError{{ID: "M2", Message: "en uso"}},
		RefreshError: "timeout",
	})
	out := buf.String()
	assert.Contains(t, out, "Completadas: 2/3")
	assert.Contains(t, out, "Operación cancelada.")
	assert.Contains(t, out, "M2 (-): en uso")
	assert.Contains(t, out, "Refresco del catálogo fallido: timeout")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	printProgress(&buf, entity.BulkOperationProgress{Total: 3, Completed: 1, CurrentID: "M2", CurrentName: "Harina"})
	printProgress(&buf, entity.BulkOperationProgress{Total: 3, Completed: 2, Cancelling: true})
	printProgress(&buf, entity.BulkOperationProgress{Total: 3, Completed: 3, Finished: true})
	assert.Equal(t, "[2/3] Harina\n[2/3] cancelando...\n", buf.String())
}

func TestDay(t *testing.T) {
	assert.Equal(t, "-", day(nil))
	d := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-10", day(&d))
}
