package schema

// Merge overlays a persisted (possibly partial) document onto the
// defaults. The merge is recursive per nested object: a field present in
// persisted wins, a field absent falls back to the default. Array values
// are replaced wholesale by the persisted value, never element-wise: a
// shorter persisted image list means the extra default images are gone.
// Neither input is mutated; untouched default subtrees are shared.
func Merge(persisted, defaults map[string]any) map[string]any {
	if len(persisted) == 0 {
		return defaults
	}
	out := make(map[string]any, len(defaults)+len(persisted))
	for k, dv := range defaults {
		out[k] = dv
	}
	for k, pv := range persisted {
		pm, pIsMap := pv.(map[string]any)
		dm, dIsMap := out[k].(map[string]any)
		if pIsMap && dIsMap {
			out[k] = Merge(pm, dm)
			continue
		}
		out[k] = pv
	}
	return out
}
