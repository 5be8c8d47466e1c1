package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	out, err := JSON.MarshalIndent(in, "", "\t")
	if err != nil {
		return err.Error()
	}
	return string(out)
}
