package workspace

// project merges the outcome of whichever branch ran into the output record. It is
// total: every field is populated from the active branch or defaults to the empty
// string, so consumers never observe a partially-nil result.
func project(mode Mode, newOutcome *provisionOutcome, existingOutcome *bindOutcome) *Result {
	result := &Result{}

	switch mode {
	case ModeExisting:
		if existingOutcome != nil {
			if existingOutcome.workspace != nil {
				result.ResourceId = existingOutcome.workspace.Id
				result.WorkspaceId = existingOutcome.workspace.CustomerId
			}
			result.PrimaryKey = Secret(existingOutcome.primaryKey)
		}
	default:
		if newOutcome != nil {
			if newOutcome.workspace != nil {
				result.ResourceId = newOutcome.workspace.Id
				result.WorkspaceId = newOutcome.workspace.CustomerId
			}
			result.PrimaryKey = Secret(newOutcome.primaryKey)
		}
	}

	return result
}
