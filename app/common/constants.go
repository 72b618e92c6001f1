package common

// 返回码，同时作为 i18n 的 message id
const (
	CODE_SUCCESS          = "0"
	CODE_ERR_UNKNOWN      = "100001"
	CODE_ERR_PARAM        = "100010"
	CODE_ERR_DATE         = "100011"
	CODE_ERR_DATE_RANGE   = "100012"
	CODE_ERR_CHART        = "100013"
	CODE_ERR_COMPAT       = "100014"
	CODE_ERR_LAN          = "100901"
	DEFAULT_LANGUAGE      = "ja"
	HEADER_LANGUAGE       = "I18n-Language"
	HEADER_REQUEST_ID     = "X-Request-Id"
	CTX_REQUEST_ID        = "request_id"
	DATE_LAYOUT           = "2006-01-02"
	SHARE_HASHTAGS        = "#算命学 #占い #運勢診断"
	SHARE_COMPAT_HASHTAGS = "#算命学 #相性診断 #占い"
)
