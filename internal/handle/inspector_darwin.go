//go:build darwin

package handle

import "github.com/bnema/webembed/internal/infrastructure/darwin"

func defaultInspector() ObjectInspector {
	return darwin.ObjC()
}
