package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning(CodeReadFailed, "permission denied", "armor.txt", "")
	assert.True(t, d.IsValid())

	d.AddError(CodeChangedEntry, `abbreviation "MinLvl" is now "MinLevel"`, "", "MinimumLevel")
	d.AddError(CodeMissingEntry, "not in mapping", "", "Strength Bonus")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`"MinimumLevel": [changed_entry] abbreviation "MinLvl" is now "MinLevel"; "Strength Bonus": [missing_entry] not in mapping`,
		err.Error())

	var other Diagnostics
	other.AddInfo(CodeNoInputs, "nothing matched", "", "")
	d.Merge(other)

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[2].Severity)
	assert.Equal(t, "[armor.txt]: [read_failed] permission denied", all[2].String())
	assert.Equal(t, "[no_inputs] nothing matched", all[3].String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}
