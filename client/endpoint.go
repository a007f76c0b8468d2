package client

const (
	DefaultBaseURL   = "http://www.simpy.com/simpy/api/rest/"
	DefaultUserAgent = "simpy-go/1.0"

	formContentType = "application/x-www-form-urlencoded; charset=utf-8"
)

// endpoint describes one fixed service URL. doctypes lists the DOCTYPE
// declarations the service embeds in its responses; they reference DTD files
// that only exist on the server and are removed before parsing.
type endpoint struct {
	path     string
	doctypes []string
	form     bool
}

func doctype(root, dtd string) string {
	return `<!DOCTYPE ` + root + ` SYSTEM "` + dtd + `">`
}

var (
	errorDoctype   = doctype("error", "Error.dtd")
	statusDoctypes = []string{doctype("status", "Status.dtd"), errorDoctype}
)

func listEndpoint(path, root, dtd string, form bool) endpoint {
	return endpoint{path: path, doctypes: []string{doctype(root, dtd), errorDoctype}, form: form}
}

func statusEndpoint(path string) endpoint {
	return endpoint{path: path, doctypes: statusDoctypes, form: true}
}

var (
	epGetTags       = listEndpoint("GetTags.do", "tags", "GetTags.dtd", false)
	epGetLinks      = listEndpoint("GetLinks.do", "links", "GetLinks.dtd", false)
	epGetNotes      = listEndpoint("GetNotes.do", "notes", "GetNotes.dtd", true)
	epGetTopics     = listEndpoint("GetTopics.do", "topics", "GetTopics.dtd", false)
	epGetTopic      = listEndpoint("GetTopic.do", "topic", "GetTopic.dtd", false)
	epGetWatchlists = listEndpoint("GetWatchlists.do", "watchlists", "GetWatchlists.dtd", true)
	epGetWatchlist  = listEndpoint("GetWatchlist.do", "watchlist", "GetWatchlist.dtd", true)

	epRemoveTag  = statusEndpoint("RemoveTag.do")
	epRenameTag  = statusEndpoint("RenameTag.do")
	epMergeTags  = statusEndpoint("MergeTags.do")
	epSplitTag   = statusEndpoint("SplitTag.do")
	epSaveLink   = statusEndpoint("SaveLink.do")
	epDeleteLink = statusEndpoint("DeleteLink.do")
	epSaveNote   = statusEndpoint("SaveNote.do")
	epDeleteNote = statusEndpoint("DeleteNote.do")
)

// query parameter names
const (
	paramQ           = "q"
	paramLimit       = "limit"
	paramDate        = "date"
	paramAfterDate   = "afterDate"
	paramBeforeDate  = "beforeDate"
	paramTitle       = "title"
	paramHref        = "href"
	paramAccessType  = "accessType"
	paramTags        = "tags"
	paramURLNickname = "urlNickname"
	paramNote        = "note"
	paramNoteID      = "noteId"
	paramDescription = "description"
	paramTopicID     = "topicId"
	paramWatchlistID = "watchlistId"
	paramTag         = "tag"
	paramFromTag     = "fromTag"
	paramFromTag1    = "fromTag1"
	paramFromTag2    = "fromTag2"
	paramToTag       = "toTag"
	paramToTag1      = "toTag1"
	paramToTag2      = "toTag2"
)
