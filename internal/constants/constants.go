package constants

const (
	//分頁
	DefaultPagingSize int = 10
	DefaultPaging     int = 1
)

type SortOrderEnum string

const (
	DefaultSortOrder SortOrderEnum = "asc"
	SortOrderAsc     SortOrderEnum = "asc"
	SortOrderDesc    SortOrderEnum = "desc"
)

type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	SessionIDKey            ContextKey = "session_id"
)

// SessionIDHeader 購物車session識別  前端沒帶就由server發一個新的
const SessionIDHeader = "X-Session-Id"

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

type AdminSessionDurationHour int

const (
	AdminSessionDuration AdminSessionDurationHour = 12
)
