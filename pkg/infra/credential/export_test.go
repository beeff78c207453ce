package credential

func (x *Provider) ParseCountForTest() int64 {
	return x.parsed.Load()
}

func WrapPKCS1ForTest(pkcs1 []byte) ([]byte, error) {
	return wrapPKCS1(pkcs1)
}
