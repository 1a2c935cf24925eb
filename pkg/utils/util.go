package utils

import (
	"bytes"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/speps/go-hashids/v2"
)

const tokenSalt = "prompt-library"

// MtRand 生成指定范围内的随机数
func MtRand(min, max int) int {
	return rand.Intn(max-min+1) + min
}

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

func GenHashID(salt string, minLength int, id int) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength
	hd.Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	h, _ := hashids.NewWithData(hd)
	e, _ := h.Encode([]int{id})
	return e
}

// RandomToken 短随机串，用于对象存储文件名
func RandomToken() string {
	return GenHashID(tokenSalt, 6, MtRand(0, 1<<30))
}
