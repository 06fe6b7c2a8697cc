package catalog

type person struct {
	ASIN string `json:"asin"`
	Name string `json:"name"`
}

type bookResponse struct {
	ASIN             string   `json:"asin"`
	Title            string   `json:"title"`
	Authors          []person `json:"authors"`
	Narrators        []person `json:"narrators"`
	PublisherName    string   `json:"publisherName"`
	ReleaseDate      string   `json:"releaseDate"`
	RuntimeLengthMin int      `json:"runtimeLengthMin"`
}

type chapterEntry struct {
	StartOffsetMs int64  `json:"startOffsetMs"`
	LengthMs      int64  `json:"lengthMs"`
	Title         string `json:"title"`
}

type chaptersResponse struct {
	ASIN     string         `json:"asin"`
	Chapters []chapterEntry `json:"chapters"`
}

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}
