package tutorial

type EventListener func(tutorial *Tutorial, data interface{})

type EventDataSetStep struct {
	Event string `json:"event"`
	Step  string `json:"step"`
	Index int    `json:"index"`
}

func (t *Tutorial) AddEventListener(event string, callback EventListener) {
	t.listenerMu.Lock()
	defer t.listenerMu.Unlock()
	t.listener[event] = append(t.listener[event], callback)
}

func (t *Tutorial) invoke(event string, data interface{}) {
	t.listenerMu.Lock()
	defer t.listenerMu.Unlock()
	for _, listener := range t.listener[event] {
		go listener(t, data)
	}
}
