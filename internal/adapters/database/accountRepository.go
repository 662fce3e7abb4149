package database

import (
	"snapline/internal/config"
	"snapline/internal/core/user"
)

// AccountRepositoryDatabase stores credential rows via the shared gorm handle.
type AccountRepositoryDatabase struct{}

func NewAccountRepositoryDatabase() *AccountRepositoryDatabase {
	return &AccountRepositoryDatabase{}
}

func (repo *AccountRepositoryDatabase) Create(account *user.Account) (*user.Account, error) {
	if err := config.DB.Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (repo *AccountRepositoryDatabase) FindByUsername(username string) (*user.Account, error) {
	var account user.Account
	if err := config.DB.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
