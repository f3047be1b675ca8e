package service

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"marketplace_dev_v1_202601/pkg/config"
)

// ==================== 单元测试 ====================

func newLocalStorageService(t *testing.T) *StorageService {
	t.Helper()
	svc, err := NewStorageService(&config.StorageConfig{
		Provider: "local",
		BasePath: t.TempDir(),
		Endpoint: "http://localhost:8080/uploads",
	})
	if err != nil {
		t.Fatalf("创建存储服务失败: %v", err)
	}
	return svc
}

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	base := t.TempDir()
	svc, err := NewStorageService(&config.StorageConfig{
		Provider: "local",
		BasePath: base,
		Endpoint: "http://localhost:8080/uploads",
	})
	if err != nil {
		t.Fatalf("创建存储服务失败: %v", err)
	}

	url, err := svc.Upload(testCtx(), []byte("fake-image-bytes"), "photo.png", "image/png")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8080/uploads/") {
		t.Errorf("url = %s, 前缀不符", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %s, 扩展名不符", url)
	}

	// 落盘内容一致
	onDisk := filepath.Join(base, filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("读取落盘文件失败: %v", err)
	}
	if string(data) != "fake-image-bytes" {
		t.Errorf("文件内容不符: %s", data)
	}

	// 本地存储签名 URL 原样返回
	signed, err := svc.GetSignedURL(testCtx(), url, time.Minute)
	if err != nil || signed != url {
		t.Errorf("signed = %s (err=%v), want %s", signed, err, url)
	}

	if err := svc.Delete(testCtx(), url); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Error("文件删除后仍存在")
	}

	// 删除不存在的文件不报错
	if err := svc.Delete(testCtx(), url); err != nil {
		t.Errorf("重复删除报错: %v", err)
	}
}

func TestLocalStorage_DefaultExtension(t *testing.T) {
	svc := newLocalStorageService(t)

	url, err := svc.Upload(testCtx(), []byte("x"), "noext", "application/octet-stream")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %s, 无扩展名时应补 .jpg", url)
	}
}

func TestStorageService_SaveBase64(t *testing.T) {
	svc := newLocalStorageService(t)

	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	url, err := svc.SaveBase64(testCtx(), encoded, "evidence")
	if err != nil {
		t.Fatalf("保存 Base64 图片失败: %v", err)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %s, 扩展名不符", url)
	}

	// 非法 Base64
	if _, err := svc.SaveBase64(testCtx(), "data:image/jpeg;base64,!!!", "evidence"); err == nil {
		t.Error("非法 Base64 未报错")
	}
}

func TestNewStorageProvider_UnknownProvider(t *testing.T) {
	if _, err := NewStorageProvider(&config.StorageConfig{Provider: "ftp"}); err == nil {
		t.Error("未知存储提供者未报错")
	}
}
