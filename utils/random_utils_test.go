package utils

import (
	"strings"
	"testing"
)

// 回退交易号带TXN前缀
func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID()
	if !strings.HasPrefix(id, "TXN") {
		t.Fatalf("交易号 = %s, want TXN前缀", id)
	}
	if len(id) <= len("TXN") {
		t.Fatalf("交易号 = %s, 缺少时间戳部分", id)
	}
}

// 回执编号是非空的UUID字符串且互不相同
func TestGenerateReceiptNumber(t *testing.T) {
	a := GenerateReceiptNumber()
	b := GenerateReceiptNumber()
	if len(a) != 36 {
		t.Fatalf("回执编号长度 = %d, want 36", len(a))
	}
	if a == b {
		t.Fatal("两次生成的回执编号不应相同")
	}
}
