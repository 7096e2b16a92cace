package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Document scanning errors
	DocumentInvalidModelError
	DocumentDuplicateCollectionError
	DocumentManifestReadError
	DocumentManifestEntryError

	// Data set errors
	DataSetReadError
	DataSetParseError
	DataSetEncodeError
	DataSetUnknownDocumentError

	// Expectation errors
	ExpectationMismatchError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBListCollectionsError
	DBReadCollectionError
	DBInsertError
	DBDropError
)
