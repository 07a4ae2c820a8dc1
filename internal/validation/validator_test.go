package validation

import (
	"errors"
	"testing"

	"github.com/ginjaninja78/menu-files-gen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(row int, id, panel string) types.CommandRecord {
	return types.CommandRecord{
		DisplayName: id,
		InternalID:  id,
		PanelName:   panel,
		ButtonStyle: "LargeWithText",
		RowNumber:   row,
	}
}

func TestValidate_CleanRecords(t *testing.T) {
	records := []types.CommandRecord{
		record(2, "MY_LINE", "Draw"),
		record(3, "MY_CIRCLE", "Draw"),
	}

	assert.Empty(t, Validate(records))
	assert.NoError(t, Check(records))
}

func TestValidate_DuplicateID(t *testing.T) {
	records := []types.CommandRecord{
		record(2, "MY_LINE", "Draw"),
		record(3, "MY_CIRCLE", "Draw"),
		record(4, "MY_LINE", "Modify"),
	}

	errs := Validate(records)
	require.Len(t, errs, 1)
	assert.Equal(t, RuleDuplicateID, errs[0].Rule)
	assert.Equal(t, 4, errs[0].RowNumber)
	assert.Contains(t, errs[0].Message, "row 2")
}

func TestValidate_EmptyAndUnsafeIDs(t *testing.T) {
	records := []types.CommandRecord{
		record(2, "", "Draw"),
		record(3, "MY LINE", "Draw"),
		record(4, `icons\MY_LINE`, "Draw"),
		record(5, "MY_ARC", ""),
	}

	errs := Validate(records)
	require.Len(t, errs, 4)

	rules := make([]string, len(errs))
	for i, err := range errs {
		rules[i] = err.Rule
	}
	assert.Equal(t, []string{RuleEmptyID, RuleUnsafeID, RuleUnsafeID, RuleEmptyPanel}, rules)
}

func TestCheck_ErrorsAs(t *testing.T) {
	err := Check([]types.CommandRecord{
		record(2, "A", "P"),
		record(3, "A", "P"),
		record(4, "", "P"),
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	assert.Contains(t, err.Error(), "validation failed with 2 errors")
}

func TestValidate_ControlCharacters(t *testing.T) {
	named := record(2, "MY_LINE", "Draw")
	named.DisplayName = "Line\x01Tool"

	split := record(3, "MY_ARC", "Draw")
	split.SplitGroupKey = "Arcs\x0B"

	panel := record(4, "MY_CIRCLE", "Dr\x7Faw")

	errs := Validate([]types.CommandRecord{named, split, panel})
	require.Len(t, errs, 3)

	assert.Equal(t, RuleControlChar, errs[0].Rule)
	assert.Equal(t, "displayName", errs[0].Field)
	assert.Equal(t, 2, errs[0].RowNumber)
	assert.Equal(t, `"Line\x01Tool"`, errs[0].Value)

	assert.Equal(t, "splitGroupKey", errs[1].Field)
	assert.Equal(t, 3, errs[1].RowNumber)

	assert.Equal(t, "panelName", errs[2].Field)
	assert.Equal(t, 4, errs[2].RowNumber)

	var verrs ValidationErrors
	require.ErrorAs(t, Check([]types.CommandRecord{named}), &verrs)
	assert.Contains(t, verrs.Error(), "control characters")
}
