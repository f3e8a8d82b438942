package spyglass

import "github.com/phanxgames/spyglass/stage"

// EnableClickToDump dumps the topmost object under the pointer on every
// click. While enabled, clicks and mouse-downs are captured on the stage and
// propagation-stopped, so the scene underneath sees neither. Idempotent.
func (in *Inspector) EnableClickToDump() {
	if in.clickToDump {
		return
	}
	in.clickToDump = true

	in.clickHandle = in.stage.OnCaptureClick(func(ev *stage.PointerEvent) {
		ev.StopPropagation()
		for _, obj := range in.stage.ObjectsUnderPoint(ev.StageX, ev.StageY) {
			if in.ownsNode(obj) {
				continue
			}
			in.DumpNode(obj, "click", true)
			return
		}
	})
	in.downHandle = in.stage.OnCaptureMouseDown(func(ev *stage.PointerEvent) {
		ev.StopPropagation()
	})
}

// DisableClickToDump removes the click and mouse-down captures. Idempotent.
func (in *Inspector) DisableClickToDump() {
	if !in.clickToDump {
		return
	}
	in.clickToDump = false
	in.clickHandle.Remove()
	in.downHandle.Remove()
}
