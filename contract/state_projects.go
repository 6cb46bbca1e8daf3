package main

import "crowdfunder/sdk"

// nextProjectID bumps the campaign counter and returns the new id. Ids are
// 1-indexed and dense, so the counter is also the total campaign count.
func nextProjectID() uint64 {
	id := getCount(ProjectsCount) + 1
	setCount(ProjectsCount, id)
	return id
}

func projectCount() uint64 {
	return getCount(ProjectsCount)
}

func saveProjectMeta(id uint64, m *ProjectMeta) {
	stateSetIfChanged(projectMetaKey(id), encodeProjectMeta(m))
}

func loadProjectMeta(id uint64) *ProjectMeta {
	ptr := sdk.StateGetObject(projectMetaKey(id))
	if ptr == nil {
		return nil
	}
	m, err := decodeProjectMeta(*ptr)
	if err != nil {
		sdk.Abort("corrupt project meta")
	}
	return m
}

// mustLoadProjectMeta aborts when the id was never assigned.
func mustLoadProjectMeta(id uint64) *ProjectMeta {
	m := loadProjectMeta(id)
	if m == nil {
		sdk.Abort(errProjectNotFound)
	}
	return m
}

func saveProjectState(id uint64, st *ProjectState) {
	stateSetIfChanged(projectStateKey(id), encodeProjectState(st))
}

func mustLoadProjectState(id uint64) *ProjectState {
	ptr := sdk.StateGetObject(projectStateKey(id))
	if ptr == nil {
		sdk.Abort(errProjectNotFound)
	}
	st, err := decodeProjectState(*ptr)
	if err != nil {
		sdk.Abort("corrupt project state")
	}
	return st
}
