package services

import "testing"

// 令牌签发后能够验证并取回声明
func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())

	tokenString, err := svc.GenerateToken(42, "member", 7)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	token, err := svc.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if !token.Valid {
		t.Fatal("令牌应当有效")
	}

	claims, err := svc.ExtractClaims(tokenString)
	if err != nil {
		t.Fatalf("ExtractClaims() error = %v", err)
	}
	if claims.UserID != 42 || claims.Role != "member" || claims.MemberID != 7 {
		t.Fatalf("声明 = %+v, want UserID=42 Role=member MemberID=7", claims)
	}
}

// 篡改的令牌验证失败
func TestJWTTampered(t *testing.T) {
	svc := NewJWTService(testConfig())

	tokenString, err := svc.GenerateToken(42, "member", 7)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(tokenString + "x"); err == nil {
		t.Fatal("篡改的令牌应当验证失败")
	}
}
