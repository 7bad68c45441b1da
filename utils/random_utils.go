package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateTransactionID 在未提供交易号时生成回退交易号，格式为 TXN<毫秒时间戳>
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN%d", time.Now().UnixMilli())
}

// GenerateReceiptNumber 生成支付回执编号
func GenerateReceiptNumber() string {
	return uuid.NewString()
}
