package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InvalidConfig           failure.ErrorCode = "InvalidConfig"
	AccessTokenMissing      failure.ErrorCode = "AccessTokenMissing"
	CatalogUnexpectedStatus failure.ErrorCode = "CatalogUnexpectedStatus"
	CatalogDecode           failure.ErrorCode = "CatalogDecode"
	UnknownExample          failure.ErrorCode = "UnknownExample"
	DuplicateExample        failure.ErrorCode = "DuplicateExample"
)
