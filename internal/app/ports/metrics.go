package ports

type PageMetrics interface {
	RecordView(controller, action string)
	RecordNotFound()
	RecordFailure()
}
