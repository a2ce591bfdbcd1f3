package internal

import (
	"log/slog"
	"slices"
)

// SetPatcher installs the function Hotpatch uses to map an effect's
// fingerprint to the fingerprint of its current code. It returns 0 or the
// same fingerprint when nothing changed.
func (r *Runtime) SetPatcher(fn func(fingerprint uintptr) uintptr) {
	r.patcher = fn
}

// Hotpatch re-runs every effect whose code changed and returns how many were
// scheduled. Without a patcher it does nothing.
func (r *Runtime) Hotpatch() int {
	if r.patcher == nil {
		return 0
	}

	ids := make([]Id, 0, len(r.effects))
	for id := range r.effects {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	patched := 0
	for _, id := range ids {
		e := r.effects[id]

		next := r.patcher(e.fingerprint)
		if next == 0 || next == e.fingerprint {
			continue
		}

		e.fingerprint = next
		r.jobs.Push(id)
		patched++
	}

	if patched > 0 {
		Logger().Debug("hotpatch", slog.Int("effects", patched))
		r.Schedule()
	}

	return patched
}
