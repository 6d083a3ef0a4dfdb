//go:build !darwin

package handle

func defaultInspector() ObjectInspector {
	return nil
}
