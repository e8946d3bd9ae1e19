package pkg

import "golang.org/x/crypto/bcrypt"

const DefaultHashCost = 14

func HashPasscode(passcode string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasscodeHash(passcode, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
