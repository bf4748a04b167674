package events

type (
	EventsSource int
)

const (
	event_source_start EventsSource = iota

	SourceSyncRun
	SourceFetcher
	SourceStore
	SourceConfig

	event_source_end
)

func (s EventsSource) String() string {
	if !s.CheckEventSource() {
		return "Unknown"
	}
	return [...]string{"Unknown", "Sync run", "Fetcher", "Store", "Configurator", "Unknown"}[s]
}

func (s EventsSource) CheckEventSource() bool {
	if event_source_start < s && s < event_source_end {
		return true
	}
	return false
}
