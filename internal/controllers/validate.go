package controllers

import (
	"strings"
	"unicode/utf8"

	"feed-api/dto"
)

const minPostFieldLen = 5

func validatePostFields(title, content string) []dto.FieldError {
	var errs []dto.FieldError
	check := func(param, value string) {
		if utf8.RuneCountInString(strings.TrimSpace(value)) < minPostFieldLen {
			errs = append(errs, dto.FieldError{
				Location: "body",
				Param:    param,
				Msg:      "Invalid value",
				Value:    value,
			})
		}
	}
	check("title", title)
	check("content", content)
	return errs
}
