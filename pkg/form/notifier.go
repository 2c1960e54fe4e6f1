package form

// ChangeNotifier is the host side of a form: it hears about value changes
// and receives the outcome of every submit.
type ChangeNotifier interface {
	OnValuesChange(name, value string)
	OnFinish(values map[string]string)
	OnFinishFailed(values map[string]string)
}

// Callbacks implements ChangeNotifier with optional functions. Nil entries
// are skipped.
type Callbacks struct {
	ValuesChange func(name, value string)
	Finish       func(values map[string]string)
	FinishFailed func(values map[string]string)
}

// OnValuesChange calls ValuesChange when set.
func (c Callbacks) OnValuesChange(name, value string) {
	if c.ValuesChange != nil {
		c.ValuesChange(name, value)
	}
}

// OnFinish calls Finish when set.
func (c Callbacks) OnFinish(values map[string]string) {
	if c.Finish != nil {
		c.Finish(values)
	}
}

// OnFinishFailed calls FinishFailed when set.
func (c Callbacks) OnFinishFailed(values map[string]string) {
	if c.FinishFailed != nil {
		c.FinishFailed(values)
	}
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) OnValuesChange(string, string)    {}
func (NopNotifier) OnFinish(map[string]string)       {}
func (NopNotifier) OnFinishFailed(map[string]string) {}
