package common

const (
	salt = "2h%#Ld(*&^pR?]q0}sYk@N8!w;Xz$vT+" //用户密码加盐
)

//用户密码进行MD5加盐哈希
func GetMD5Password(pwd string) string {
	return GetMD5OfStr(pwd + salt)
}
