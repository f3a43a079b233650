package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"macTime/alarm"
	"macTime/i18n"
	"macTime/window"
)

// AlarmView lists the alarms with a switch each.
type AlarmView struct {
	list    *alarm.List
	alarms  []alarm.Alarm
	rows    *widget.List
	content fyne.CanvasObject
}

// NewAlarmView builds the view over list.
func NewAlarmView(a App, list *alarm.List) *AlarmView {
	v := &AlarmView{list: list, alarms: list.Alarms()}

	v.rows = widget.NewList(
		func() int { return len(v.alarms) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			name.TextStyle.Bold = true
			return container.NewBorder(nil, nil, nil, widget.NewCheck("", nil), name)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id < 0 || id >= len(v.alarms) {
				return
			}
			al := v.alarms[id]
			row := o.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(al.Name)
			check := row.Objects[1].(*widget.Check)
			check.OnChanged = nil
			check.SetChecked(al.Active)
			check.OnChanged = func(on bool) {
				list.SetActive(al.ID, on)
			}
		},
	)

	v.content = panel(container.NewBorder(
		newHeader(a, window.KindAlarm, i18n.T("Alarms")),
		nil, nil, nil,
		v.rows,
	))

	list.SetOnChange(v.UpdateDisplay)
	return v
}

// Object returns the view's root canvas object.
func (v *AlarmView) Object() fyne.CanvasObject {
	return v.content
}

// UpdateDisplay re-reads the alarms.
func (v *AlarmView) UpdateDisplay() {
	alarms := v.list.Alarms()
	fyne.Do(func() {
		v.alarms = alarms
		v.rows.Refresh()
	})
}
