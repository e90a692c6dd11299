package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single entry together with its references.
type EntryData struct {
	Entry      interface{}     `json:"entry"`
	References ReferencesModel `json:"references"`
}

// ListData wraps a list of items together with its references.
type ListData struct {
	LimitExceeded bool            `json:"limitExceeded"`
	List          interface{}     `json:"list"`
	References    ReferencesModel `json:"references"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewEntryResponse builds the standard OK envelope around a single entry.
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data: EntryData{
			Entry:      entry,
			References: references,
		},
		Text:    "OK",
		Version: 2,
	}
}

// NewListResponse builds the standard OK envelope around a list of items.
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data: ListData{
			LimitExceeded: false,
			List:          list,
			References:    references,
		},
		Text:    "OK",
		Version: 2,
	}
}
