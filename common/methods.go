package common

import (
	"crypto/md5"
	"encoding/hex"
	"io/ioutil"
	"os"
)

func GetMD5OfStr(str string) string { //获取一个字符串的MD5
	h := md5.New()
	h.Write([]byte(str))
	return hex.EncodeToString(h.Sum(nil))
}

//以下为文件的一系列操作
func GetContent(path string) (string, error) { //读取文件内容
	if yes, _ := PathExists(path); !yes {
		return "", nil
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	bt, err := ioutil.ReadAll(file)
	if err != nil {
		return "", nil
	}
	return string(bt), err
}

func WriteToFile(path string, content string) error { //写入文件
	return ioutil.WriteFile(path, []byte(content), os.ModePerm)
}

func PathExists(path string) (bool, error) { //判断文件是否存在
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
